package dto

import (
	"strings"

	courseModel "luctreports_backend/internals/features/academics/course/model"
)

type CreateCourseRequest struct {
	Name                string  `json:"name" validate:"required,max=255"`
	Code                string  `json:"code" validate:"required,max=50"`
	Description         *string `json:"description" validate:"omitempty"`
	FacultyID           uint    `json:"facultyId" validate:"required"`
	ProgramLeaderID     *uint   `json:"programLeaderId" validate:"omitempty"`
	PrincipalLecturerID *uint   `json:"principalLecturerId" validate:"omitempty"`
}

type UpdateCourseRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=1,max=255"`
	Code                *string `json:"code" validate:"omitempty,min=1,max=50"`
	Description         *string `json:"description" validate:"omitempty"`
	FacultyID           *uint   `json:"facultyId" validate:"omitempty"`
	ProgramLeaderID     *uint   `json:"programLeaderId" validate:"omitempty"`
	PrincipalLecturerID *uint   `json:"principalLecturerId" validate:"omitempty"`
}

func (r CreateCourseRequest) ToModel() courseModel.CourseModel {
	return courseModel.CourseModel{
		Name:                strings.TrimSpace(r.Name),
		Code:                strings.TrimSpace(r.Code),
		Description:         r.Description,
		FacultyID:           r.FacultyID,
		ProgramLeaderID:     r.ProgramLeaderID,
		PrincipalLecturerID: r.PrincipalLecturerID,
	}
}

func (r UpdateCourseRequest) Apply(m *courseModel.CourseModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Code != nil {
		m.Code = strings.TrimSpace(*r.Code)
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.FacultyID != nil {
		m.FacultyID = *r.FacultyID
	}
	if r.ProgramLeaderID != nil {
		m.ProgramLeaderID = r.ProgramLeaderID
	}
	if r.PrincipalLecturerID != nil {
		m.PrincipalLecturerID = r.PrincipalLecturerID
	}
}
