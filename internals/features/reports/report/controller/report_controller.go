package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	classModel "luctreports_backend/internals/features/academics/class/model"
	courseModel "luctreports_backend/internals/features/academics/course/model"
	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	reportDto "luctreports_backend/internals/features/reports/report/dto"
	reportModel "luctreports_backend/internals/features/reports/report/model"
	userModel "luctreports_backend/internals/features/users/user/model"
	helper "luctreports_backend/internals/helpers"
)

var validate = validator.New()

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type fkRefs struct {
	facultyID  *uint
	classID    *uint
	courseID   *uint
	lecturerID *uint
}

// checkRefs resolves every present foreign key in order and writes the
// matching 404 when one is missing. The lecturer must hold a reporting role.
func (ctl *ReportController) checkRefs(c *fiber.Ctx, refs fkRefs) error {
	db := ctl.DB.WithContext(c.Context())

	if refs.facultyID != nil {
		if err := db.First(&facultyModel.FacultyModel{}, *refs.facultyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
			}
			return helper.JsonServerError(c, err)
		}
	}
	if refs.classID != nil {
		if err := db.First(&classModel.ClassModel{}, *refs.classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
			}
			return helper.JsonServerError(c, err)
		}
	}
	if refs.courseID != nil {
		if err := db.First(&courseModel.CourseModel{}, *refs.courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
			}
			return helper.JsonServerError(c, err)
		}
	}
	if refs.lecturerID != nil {
		var lecturer userModel.UserModel
		if err := db.First(&lecturer, *refs.lecturerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Lecturer not found or invalid role")
			}
			return helper.JsonServerError(c, err)
		}
		if lecturer.Role != constants.RoleLecturer && lecturer.Role != constants.RolePrincipalLecturer {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecturer not found or invalid role")
		}
	}
	return nil
}

// Create
// POST /api/reports
func (ctl *ReportController) Create(c *fiber.Ctx) error {
	var req reportDto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "All required fields must be filled")
	}

	if err := ctl.checkRefs(c, fkRefs{
		facultyID:  &req.FacultyID,
		classID:    &req.ClassID,
		courseID:   &req.CourseID,
		lecturerID: &req.LecturerID,
	}); err != nil {
		return err
	}

	report := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&report).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusCreated, "report", report)
}

// GetAll
// GET /api/reports
func (ctl *ReportController) GetAll(c *fiber.Ctx) error {
	var reports []reportModel.ReportModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Faculty").
		Preload("Class").
		Preload("Course").
		Preload("Lecturer").
		Order("id asc").
		Find(&reports).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "reports", reports)
}

// GetByID returns the report with nested faculty/class/course/lecturer.
// GET /api/reports/:id
func (ctl *ReportController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var report reportModel.ReportModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Faculty").
		Preload("Class").
		Preload("Course").
		Preload("Lecturer").
		First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "report", report)
}

// Update re-validates any foreign keys present in the request body.
// PUT /api/reports/:id
func (ctl *ReportController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var report reportModel.ReportModel
	if err := ctl.DB.WithContext(c.Context()).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return helper.JsonServerError(c, err)
	}

	var req reportDto.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.checkRefs(c, fkRefs{
		facultyID:  req.FacultyID,
		classID:    req.ClassID,
		courseID:   req.CourseID,
		lecturerID: req.LecturerID,
	}); err != nil {
		return err
	}

	req.Apply(&report)
	if err := ctl.DB.WithContext(c.Context()).Save(&report).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "report", report)
}

// Delete
// DELETE /api/reports/:id
func (ctl *ReportController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&reportModel.ReportModel{}, id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Report deleted successfully")
}
