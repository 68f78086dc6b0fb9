package model

import (
	"time"

	courseModel "luctreports_backend/internals/features/academics/course/model"
	userModel "luctreports_backend/internals/features/users/user/model"
)

const (
	Semester1 = "1"
	Semester2 = "2"
)

// ClassModel is a scheduled section of a course taught by a lecturer.
// TotalRegisteredStudents holds a global count of student users taken at
// create/update time; it does not track per-class enrollment.
type ClassModel struct {
	ID                      uint    `gorm:"primaryKey" json:"id"`
	Name                    string  `gorm:"size:255;not null" json:"name"`
	Year                    int     `gorm:"not null" json:"year"`
	Semester                string  `gorm:"type:varchar(1);not null" json:"semester"`
	Venue                   *string `gorm:"size:255" json:"venue,omitempty"`
	ScheduledTime           *string `gorm:"size:50" json:"scheduledTime,omitempty"`
	TotalRegisteredStudents int64   `json:"totalRegisteredStudents"`

	CourseID   uint `gorm:"not null" json:"courseId"`
	LecturerID uint `gorm:"not null" json:"lecturerId"`

	Course   *courseModel.CourseModel `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	Lecturer *userModel.UserModel     `gorm:"foreignKey:LecturerID" json:"lecturer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ClassModel) TableName() string {
	return "classes"
}
