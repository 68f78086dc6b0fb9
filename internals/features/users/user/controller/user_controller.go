package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	authService "luctreports_backend/internals/features/users/auth/service"
	userDto "luctreports_backend/internals/features/users/user/dto"
	userModel "luctreports_backend/internals/features/users/user/model"
	helper "luctreports_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Create
// POST /api/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req userDto.CreateUserRequest
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

	user := req.ToModel()
	user.Password = hashed
	user.Role = req.Role
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Username or email already taken")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusCreated, "user", user)
}

// GetAll (password never serialized)
// GET /api/users
func (ctl *UserController) GetAll(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).Order("id asc").Find(&users).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "users", users)
}

// GetByID
// GET /api/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "user", user)
}

// Update re-hashes the password only when a matching pair is supplied.
// PUT /api/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonServerError(c, err)
	}

	var req userDto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.Password != nil || req.PasswordConfirm != nil {
		if req.Password == nil || req.PasswordConfirm == nil || *req.Password != *req.PasswordConfirm {
			return helper.JsonError(c, fiber.StatusBadRequest, "Passwords do not match")
		}
		hashed, err := authService.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonServerError(c, err)
		}
		user.Password = hashed
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !constants.IsValidRole(*req.Role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
		}
		user.Role = *req.Role
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Username or email already taken")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "user", user)
}

// Delete
// DELETE /api/users/:id
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&userModel.UserModel{}, id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "User deleted successfully")
}
