package model

import (
	"time"
)

// FacultyModel is the top-level academic division owning courses.
type FacultyModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (FacultyModel) TableName() string {
	return "faculties"
}
