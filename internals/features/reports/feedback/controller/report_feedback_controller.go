package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackDto "luctreports_backend/internals/features/reports/feedback/dto"
	feedbackModel "luctreports_backend/internals/features/reports/feedback/model"
	reportModel "luctreports_backend/internals/features/reports/report/model"
	userModel "luctreports_backend/internals/features/users/user/model"
	helper "luctreports_backend/internals/helpers"
)

var validate = validator.New()

type ReportFeedbackController struct {
	DB *gorm.DB
}

func NewReportFeedbackController(db *gorm.DB) *ReportFeedbackController {
	return &ReportFeedbackController{DB: db}
}

// Create adds one feedback per (report, user) pair. The duplicate pre-query
// gives the client a clean 409; the composite unique index backs it up
// against races.
// POST /api/reportFeedbacks/:reportId
func (ctl *ReportFeedbackController) Create(c *fiber.Ctx) error {
	reportID, err := helper.ParseIDParam(c, "reportId")
	if err != nil {
		return err
	}

	var req feedbackDto.CreateReportFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Rating and userId are required")
	}

	db := ctl.DB.WithContext(c.Context())

	if err := db.First(&reportModel.ReportModel{}, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return helper.JsonServerError(c, err)
	}
	if err := db.First(&userModel.UserModel{}, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonServerError(c, err)
	}

	var existing feedbackModel.ReportFeedbackModel
	err = db.Where("report_id = ? AND user_id = ?", reportID, req.UserID).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Feedback for this report already exists for this user")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonServerError(c, err)
	}

	feedback := req.ToModel(reportID)
	if err := db.Create(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Feedback for this report already exists for this user")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusCreated, "feedback", feedback)
}

// GetAll
// GET /api/reportFeedbacks
func (ctl *ReportFeedbackController) GetAll(c *fiber.Ctx) error {
	var feedbacks []feedbackModel.ReportFeedbackModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("User").
		Preload("Report").
		Order("id asc").
		Find(&feedbacks).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "feedbacks", feedbacks)
}

// GetByID
// GET /api/reportFeedbacks/:id
func (ctl *ReportFeedbackController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var feedback feedbackModel.ReportFeedbackModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("User").
		Preload("Report").
		First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Feedback not found")
		}
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "feedback", feedback)
}

// GetByReport lists all feedback rows for one report.
// GET /api/reportFeedbacks/report/:reportId
func (ctl *ReportFeedbackController) GetByReport(c *fiber.Ctx) error {
	reportID, err := helper.ParseIDParam(c, "reportId")
	if err != nil {
		return err
	}
	var feedbacks []feedbackModel.ReportFeedbackModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("User").
		Where("report_id = ?", reportID).
		Order("id asc").
		Find(&feedbacks).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "feedbacks", feedbacks)
}

// Update replaces rating/comment.
// PUT /api/reportFeedbacks/:id
func (ctl *ReportFeedbackController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var feedback feedbackModel.ReportFeedbackModel
	if err := ctl.DB.WithContext(c.Context()).First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Feedback not found")
		}
		return helper.JsonServerError(c, err)
	}

	var req feedbackDto.UpdateReportFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&feedback)
	if err := ctl.DB.WithContext(c.Context()).Save(&feedback).Error; err != nil {
		return helper.JsonServerError(c, err)
	}
	return helper.JsonResource(c, fiber.StatusOK, "feedback", feedback)
}

// Delete
// DELETE /api/reportFeedbacks/:id
func (ctl *ReportFeedbackController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&feedbackModel.ReportFeedbackModel{}, id)
	if res.Error != nil {
		return helper.JsonServerError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Feedback not found")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Feedback deleted successfully")
}
