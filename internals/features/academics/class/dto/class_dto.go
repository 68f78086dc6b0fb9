package dto

import (
	"strings"

	classModel "luctreports_backend/internals/features/academics/class/model"
)

type CreateClassRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Year          int     `json:"year" validate:"required"`
	Semester      string  `json:"semester" validate:"required,oneof=1 2"`
	Venue         *string `json:"venue" validate:"omitempty,max=255"`
	ScheduledTime *string `json:"scheduledTime" validate:"omitempty,max=50"`
	CourseID      uint    `json:"courseId" validate:"required"`
	LecturerID    uint    `json:"lecturerId" validate:"required"`
}

type UpdateClassRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=255"`
	Year          *int    `json:"year" validate:"omitempty"`
	Semester      *string `json:"semester" validate:"omitempty,oneof=1 2"`
	Venue         *string `json:"venue" validate:"omitempty,max=255"`
	ScheduledTime *string `json:"scheduledTime" validate:"omitempty,max=50"`
	CourseID      *uint   `json:"courseId" validate:"omitempty"`
	LecturerID    *uint   `json:"lecturerId" validate:"omitempty"`
}

func (r CreateClassRequest) ToModel() classModel.ClassModel {
	return classModel.ClassModel{
		Name:          strings.TrimSpace(r.Name),
		Year:          r.Year,
		Semester:      r.Semester,
		Venue:         r.Venue,
		ScheduledTime: r.ScheduledTime,
		CourseID:      r.CourseID,
		LecturerID:    r.LecturerID,
	}
}

func (r UpdateClassRequest) Apply(m *classModel.ClassModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.Semester != nil {
		m.Semester = *r.Semester
	}
	if r.Venue != nil {
		m.Venue = r.Venue
	}
	if r.ScheduledTime != nil {
		m.ScheduledTime = r.ScheduledTime
	}
	if r.CourseID != nil {
		m.CourseID = *r.CourseID
	}
	if r.LecturerID != nil {
		m.LecturerID = *r.LecturerID
	}
}
