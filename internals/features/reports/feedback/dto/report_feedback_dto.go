package dto

import (
	feedbackModel "luctreports_backend/internals/features/reports/feedback/model"
)

type CreateReportFeedbackRequest struct {
	Rating  *int    `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty"`
	UserID  uint    `json:"userId" validate:"required"`
}

type UpdateReportFeedbackRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty"`
}

func (r CreateReportFeedbackRequest) ToModel(reportID uint) feedbackModel.ReportFeedbackModel {
	return feedbackModel.ReportFeedbackModel{
		Rating:   *r.Rating,
		Comment:  r.Comment,
		ReportID: reportID,
		UserID:   r.UserID,
	}
}

func (r UpdateReportFeedbackRequest) Apply(m *feedbackModel.ReportFeedbackModel) {
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	if r.Comment != nil {
		m.Comment = r.Comment
	}
}
