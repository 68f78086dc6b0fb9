package model

import (
	"time"

	"gorm.io/datatypes"

	classModel "luctreports_backend/internals/features/academics/class/model"
	courseModel "luctreports_backend/internals/features/academics/course/model"
	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	userModel "luctreports_backend/internals/features/users/user/model"
)

// ReportModel is a per-lecture record of attendance and content submitted by
// a lecturer for a class.
type ReportModel struct {
	ID                      uint           `gorm:"primaryKey" json:"id"`
	WeekOfReporting         int            `gorm:"not null" json:"weekOfReporting"`
	DateOfLecture           datatypes.Date `gorm:"not null" json:"dateOfLecture"`
	ActualStudentsPresent   int            `gorm:"not null" json:"actualStudentsPresent"`
	TotalRegisteredStudents int            `gorm:"not null" json:"totalRegisteredStudents"`
	Venue                   string         `gorm:"size:255;not null" json:"venue"`
	ScheduledTime           string         `gorm:"size:50;not null" json:"scheduledTime"`
	TopicTaught             string         `gorm:"size:255;not null" json:"topicTaught"`
	LearningOutcomes        string         `gorm:"type:text;not null" json:"learningOutcomes"`
	LecturerRecommendations *string        `gorm:"type:text" json:"lecturerRecommendations,omitempty"`

	FacultyID  uint `gorm:"not null" json:"facultyId"`
	ClassID    uint `gorm:"not null" json:"classId"`
	CourseID   uint `gorm:"not null" json:"courseId"`
	LecturerID uint `gorm:"not null" json:"lecturerId"`

	Faculty  *facultyModel.FacultyModel `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"faculty,omitempty"`
	Class    *classModel.ClassModel     `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"class,omitempty"`
	Course   *courseModel.CourseModel   `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	Lecturer *userModel.UserModel       `gorm:"foreignKey:LecturerID" json:"lecturer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ReportModel) TableName() string {
	return "reports"
}
