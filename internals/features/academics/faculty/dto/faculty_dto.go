package dto

import (
	"strings"

	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
)

type CreateFacultyRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Update is partial; nil means leave the field untouched.
type UpdateFacultyRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}

func (r CreateFacultyRequest) ToModel() facultyModel.FacultyModel {
	return facultyModel.FacultyModel{
		Name: strings.TrimSpace(r.Name),
	}
}

func (r UpdateFacultyRequest) Apply(m *facultyModel.FacultyModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
}
