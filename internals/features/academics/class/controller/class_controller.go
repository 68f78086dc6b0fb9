package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	classDto "luctreports_backend/internals/features/academics/class/dto"
	classModel "luctreports_backend/internals/features/academics/class/model"
	courseModel "luctreports_backend/internals/features/academics/course/model"
	userModel "luctreports_backend/internals/features/users/user/model"
	helper "luctreports_backend/internals/helpers"
)

var validate = validator.New()

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

func (ctl *ClassController) checkCourse(c *fiber.Ctx, id uint) error {
	var course courseModel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonServerError(c, err)
	}
	return nil
}

func (ctl *ClassController) checkLecturer(c *fiber.Ctx, id uint) error {
	var lecturer userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&lecturer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecturer not found or invalid role")
		}
		return helper.JsonServerError(c, err)
	}
	if lecturer.Role != constants.RoleLecturer {
		return helper.JsonError(c, fiber.StatusNotFound, "Lecturer not found or invalid role")
	}
	return nil
}

// countStudents is the live global count of student users. This is NOT a
// per-class enrollment figure; every class sees the same number.
func (ctl *ClassController) countStudents(c *fiber.Ctx) (int64, error) {
	var n int64
	err := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleStudent).
		Count(&n).Error
	return n, err
}

// Create
// POST /api/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req classDto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name, year, semester, courseId, and lecturerId are required")
	}

	if err := ctl.checkCourse(c, req.CourseID); err != nil {
		return err
	}
	if err := ctl.checkLecturer(c, req.LecturerID); err != nil {
		return err
	}

	class := req.ToModel()
	count, err := ctl.countStudents(c)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	class.TotalRegisteredStudents = count

	if err := ctl.DB.WithContext(c.Context()).Create(&class).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusCreated, "class", class)
}

// GetAll
// GET /api/classes
func (ctl *ClassController) GetAll(c *fiber.Ctx) error {
	var classes []classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Course").
		Preload("Lecturer").
		Order("id asc").
		Find(&classes).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "classes", classes)
}

// GetByID
// GET /api/classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Course").
		Preload("Lecturer").
		First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "class", class)
}

// Update re-validates changed foreign keys and recomputes the student count.
// PUT /api/classes/:id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonServerError(c, err)
	}

	var req classDto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.CourseID != nil {
		if err := ctl.checkCourse(c, *req.CourseID); err != nil {
			return err
		}
	}
	if req.LecturerID != nil {
		if err := ctl.checkLecturer(c, *req.LecturerID); err != nil {
			return err
		}
	}

	req.Apply(&class)
	count, err := ctl.countStudents(c)
	if err != nil {
		return helper.JsonServerError(c, err)
	}
	class.TotalRegisteredStudents = count

	if err := ctl.DB.WithContext(c.Context()).Save(&class).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "class", class)
}

// Delete
// DELETE /api/classes/:id
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&classModel.ClassModel{}, id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Class deleted successfully")
}
