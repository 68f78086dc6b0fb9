package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	reportModel "luctreports_backend/internals/features/reports/report/model"
)

const dateLayout = "2006-01-02"

type CreateReportRequest struct {
	FacultyID               uint    `json:"facultyId" validate:"required"`
	ClassID                 uint    `json:"classId" validate:"required"`
	CourseID                uint    `json:"courseId" validate:"required"`
	LecturerID              uint    `json:"lecturerId" validate:"required"`
	WeekOfReporting         int     `json:"weekOfReporting" validate:"required,min=1"`
	DateOfLecture           string  `json:"dateOfLecture" validate:"required,datetime=2006-01-02"`
	ActualStudentsPresent   *int    `json:"actualStudentsPresent" validate:"required,min=0"`
	TotalRegisteredStudents *int    `json:"totalRegisteredStudents" validate:"required,min=0"`
	Venue                   string  `json:"venue" validate:"required,max=255"`
	ScheduledTime           string  `json:"scheduledTime" validate:"required,max=50"`
	TopicTaught             string  `json:"topicTaught" validate:"required,max=255"`
	LearningOutcomes        string  `json:"learningOutcomes" validate:"required"`
	LecturerRecommendations *string `json:"lecturerRecommendations" validate:"omitempty"`
}

type UpdateReportRequest struct {
	FacultyID               *uint   `json:"facultyId" validate:"omitempty"`
	ClassID                 *uint   `json:"classId" validate:"omitempty"`
	CourseID                *uint   `json:"courseId" validate:"omitempty"`
	LecturerID              *uint   `json:"lecturerId" validate:"omitempty"`
	WeekOfReporting         *int    `json:"weekOfReporting" validate:"omitempty,min=1"`
	DateOfLecture           *string `json:"dateOfLecture" validate:"omitempty,datetime=2006-01-02"`
	ActualStudentsPresent   *int    `json:"actualStudentsPresent" validate:"omitempty,min=0"`
	TotalRegisteredStudents *int    `json:"totalRegisteredStudents" validate:"omitempty,min=0"`
	Venue                   *string `json:"venue" validate:"omitempty,min=1,max=255"`
	ScheduledTime           *string `json:"scheduledTime" validate:"omitempty,min=1,max=50"`
	TopicTaught             *string `json:"topicTaught" validate:"omitempty,min=1,max=255"`
	LearningOutcomes        *string `json:"learningOutcomes" validate:"omitempty,min=1"`
	LecturerRecommendations *string `json:"lecturerRecommendations" validate:"omitempty"`
}

func (r CreateReportRequest) ToModel() reportModel.ReportModel {
	// format already checked by the datetime validator
	d, _ := time.Parse(dateLayout, r.DateOfLecture)
	return reportModel.ReportModel{
		FacultyID:               r.FacultyID,
		ClassID:                 r.ClassID,
		CourseID:                r.CourseID,
		LecturerID:              r.LecturerID,
		WeekOfReporting:         r.WeekOfReporting,
		DateOfLecture:           datatypes.Date(d),
		ActualStudentsPresent:   *r.ActualStudentsPresent,
		TotalRegisteredStudents: *r.TotalRegisteredStudents,
		Venue:                   strings.TrimSpace(r.Venue),
		ScheduledTime:           strings.TrimSpace(r.ScheduledTime),
		TopicTaught:             strings.TrimSpace(r.TopicTaught),
		LearningOutcomes:        r.LearningOutcomes,
		LecturerRecommendations: r.LecturerRecommendations,
	}
}

func (r UpdateReportRequest) Apply(m *reportModel.ReportModel) {
	if r.FacultyID != nil {
		m.FacultyID = *r.FacultyID
	}
	if r.ClassID != nil {
		m.ClassID = *r.ClassID
	}
	if r.CourseID != nil {
		m.CourseID = *r.CourseID
	}
	if r.LecturerID != nil {
		m.LecturerID = *r.LecturerID
	}
	if r.WeekOfReporting != nil {
		m.WeekOfReporting = *r.WeekOfReporting
	}
	if r.DateOfLecture != nil {
		d, _ := time.Parse(dateLayout, *r.DateOfLecture)
		m.DateOfLecture = datatypes.Date(d)
	}
	if r.ActualStudentsPresent != nil {
		m.ActualStudentsPresent = *r.ActualStudentsPresent
	}
	if r.TotalRegisteredStudents != nil {
		m.TotalRegisteredStudents = *r.TotalRegisteredStudents
	}
	if r.Venue != nil {
		m.Venue = strings.TrimSpace(*r.Venue)
	}
	if r.ScheduledTime != nil {
		m.ScheduledTime = strings.TrimSpace(*r.ScheduledTime)
	}
	if r.TopicTaught != nil {
		m.TopicTaught = strings.TrimSpace(*r.TopicTaught)
	}
	if r.LearningOutcomes != nil {
		m.LearningOutcomes = *r.LearningOutcomes
	}
	if r.LecturerRecommendations != nil {
		m.LecturerRecommendations = r.LecturerRecommendations
	}
}
