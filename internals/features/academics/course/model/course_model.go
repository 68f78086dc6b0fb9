package model

import (
	"time"

	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	userModel "luctreports_backend/internals/features/users/user/model"
)

// CourseModel is a subject offering within a faculty. Deleting the faculty
// cascades to its courses.
type CourseModel struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Code        string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	FacultyID           uint  `gorm:"not null" json:"facultyId"`
	ProgramLeaderID     *uint `json:"programLeaderId,omitempty"`
	PrincipalLecturerID *uint `json:"principalLecturerId,omitempty"`

	Faculty           *facultyModel.FacultyModel `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"faculty,omitempty"`
	ProgramLeader     *userModel.UserModel       `gorm:"foreignKey:ProgramLeaderID" json:"programLeader,omitempty"`
	PrincipalLecturer *userModel.UserModel       `gorm:"foreignKey:PrincipalLecturerID" json:"principalLecturer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CourseModel) TableName() string {
	return "courses"
}
