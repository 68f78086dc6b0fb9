package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyDto "luctreports_backend/internals/features/academics/faculty/dto"
	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	helper "luctreports_backend/internals/helpers"
)

var validate = validator.New()

type FacultyController struct {
	DB *gorm.DB
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{DB: db}
}

// Create
// POST /api/faculties
func (ctl *FacultyController) Create(c *fiber.Ctx) error {
	var req facultyDto.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Faculty name is required")
	}

	// Pre-query duplicate check. Two racing creates can both pass it; the
	// unique index then fails the loser with a translated duplicate error.
	var existing facultyModel.FacultyModel
	err := ctl.DB.WithContext(c.Context()).Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Faculty already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonServerError(c, err)
	}

	faculty := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&faculty).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Faculty already exists")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusCreated, "faculty", faculty)
}

// GetAll
// GET /api/faculties
func (ctl *FacultyController) GetAll(c *fiber.Ctx) error {
	var faculties []facultyModel.FacultyModel
	if err := ctl.DB.WithContext(c.Context()).Order("id asc").Find(&faculties).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "faculties", faculties)
}

// GetByID
// GET /api/faculties/:id
func (ctl *FacultyController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var faculty facultyModel.FacultyModel
	if err := ctl.DB.WithContext(c.Context()).First(&faculty, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "faculty", faculty)
}

// Update (partial)
// PUT /api/faculties/:id
func (ctl *FacultyController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var faculty facultyModel.FacultyModel
	if err := ctl.DB.WithContext(c.Context()).First(&faculty, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		return helper.JsonServerError(c, err)
	}

	var req facultyDto.UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&faculty)
	if err := ctl.DB.WithContext(c.Context()).Save(&faculty).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Faculty already exists")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "faculty", faculty)
}

// Delete removes the faculty; dependent courses go with it (FK cascade).
// DELETE /api/faculties/:id
func (ctl *FacultyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&facultyModel.FacultyModel{}, id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Faculty deleted successfully")
}
