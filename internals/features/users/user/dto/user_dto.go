package dto

import (
	"strings"

	userModel "luctreports_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
	Role            string `json:"role" validate:"omitempty"`
}

// Update is partial; a password change requires the matching confirmation.
type UpdateUserRequest struct {
	Username        *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,min=8"`
	PasswordConfirm *string `json:"passwordConfirm" validate:"omitempty"`
	Role            *string `json:"role" validate:"omitempty"`
}

func (r CreateUserRequest) ToModel() userModel.UserModel {
	return userModel.UserModel{
		Username: strings.TrimSpace(r.Username),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Role:     r.Role,
	}
}
