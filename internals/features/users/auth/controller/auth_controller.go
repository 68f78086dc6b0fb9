package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	authDto "luctreports_backend/internals/features/users/auth/dto"
	authModel "luctreports_backend/internals/features/users/auth/model"
	authService "luctreports_backend/internals/features/users/auth/service"
	userModel "luctreports_backend/internals/features/users/user/model"
	helper "luctreports_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Register
// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req authDto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" || req.PasswordConfirm == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}
	if req.Password != req.PasswordConfirm {
		return helper.JsonError(c, fiber.StatusBadRequest, "Passwords do not match")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Role == "" {
		req.Role = constants.RoleStudent
	}
	if !constants.IsValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	user := userModel.UserModel{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Username or email already taken")
		}
		return helper.JsonServerError(c, err)
	}

	token, err := authService.GenerateAccessToken(&user)
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonResource(c, fiber.StatusCreated, "data", authDto.AuthResponse{
		Token: token,
		User:  user,
	})
}

// Login
// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonServerError(c, err)
	}
	if err := authService.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := authService.GenerateAccessToken(&user)
	if err != nil {
		return helper.JsonServerError(c, err)
	}

	return helper.JsonResource(c, fiber.StatusOK, "data", authDto.AuthResponse{
		Token: token,
		User:  user,
	})
}

// Logout blacklists the presented token.
// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing token")
	}
	tokenString := header[len(prefix):]

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiresAt: authService.TokenExpiry(tokenString),
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		// already blacklisted counts as logged out
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonServerError(c, err)
		}
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Logged out successfully")
}

// Me returns the authenticated user.
// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "user", user)
}
