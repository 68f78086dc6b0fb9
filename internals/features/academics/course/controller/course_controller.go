package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	courseDto "luctreports_backend/internals/features/academics/course/dto"
	courseModel "luctreports_backend/internals/features/academics/course/model"
	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	userModel "luctreports_backend/internals/features/users/user/model"
	helper "luctreports_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// checkUserRole resolves a referenced user and verifies its role, returning
// the 404 the API promises when either part fails.
func (ctl *CourseController) checkUserRole(c *fiber.Ctx, id uint, role, label string) error {
	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, label+" not found or invalid role")
		}
		return helper.JsonServerError(c, err)
	}
	if user.Role != role {
		return helper.JsonError(c, fiber.StatusNotFound, label+" not found or invalid role")
	}
	return nil
}

func (ctl *CourseController) checkFaculty(c *fiber.Ctx, id uint) error {
	var faculty facultyModel.FacultyModel
	if err := ctl.DB.WithContext(c.Context()).First(&faculty, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		return helper.JsonServerError(c, err)
	}
	return nil
}

// Create
// POST /api/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req courseDto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name, code, and facultyId are required")
	}

	if err := ctl.checkFaculty(c, req.FacultyID); err != nil {
		return err
	}
	if req.ProgramLeaderID != nil {
		if err := ctl.checkUserRole(c, *req.ProgramLeaderID, constants.RoleProgramLeader, "Program Leader"); err != nil {
			return err
		}
	}
	if req.PrincipalLecturerID != nil {
		if err := ctl.checkUserRole(c, *req.PrincipalLecturerID, constants.RolePrincipalLecturer, "Principal Lecturer"); err != nil {
			return err
		}
	}

	course := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Course code already exists")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusCreated, "course", course)
}

// GetAll
// GET /api/courses
func (ctl *CourseController) GetAll(c *fiber.Ctx) error {
	var courses []courseModel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Faculty").
		Preload("ProgramLeader").
		Preload("PrincipalLecturer").
		Order("id asc").
		Find(&courses).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "courses", courses)
}

// GetByID
// GET /api/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var course courseModel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Faculty").
		Preload("ProgramLeader").
		Preload("PrincipalLecturer").
		First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "course", course)
}

// Update re-validates any changed foreign keys.
// PUT /api/courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var course courseModel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonServerError(c, err)
	}

	var req courseDto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.FacultyID != nil {
		if err := ctl.checkFaculty(c, *req.FacultyID); err != nil {
			return err
		}
	}
	if req.ProgramLeaderID != nil {
		if err := ctl.checkUserRole(c, *req.ProgramLeaderID, constants.RoleProgramLeader, "Program Leader"); err != nil {
			return err
		}
	}
	if req.PrincipalLecturerID != nil {
		if err := ctl.checkUserRole(c, *req.PrincipalLecturerID, constants.RolePrincipalLecturer, "Principal Lecturer"); err != nil {
			return err
		}
	}

	req.Apply(&course)
	if err := ctl.DB.WithContext(c.Context()).Save(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Course code already exists")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "course", course)
}

// Delete
// DELETE /api/courses/:id
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&courseModel.CourseModel{}, id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Course deleted successfully")
}
