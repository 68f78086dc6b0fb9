package dto

import (
	userModel "luctreports_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
	Role            string `json:"role" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the login/register payload the SPA stores client-side.
type AuthResponse struct {
	Token string              `json:"token"`
	User  userModel.UserModel `json:"user"`
}
