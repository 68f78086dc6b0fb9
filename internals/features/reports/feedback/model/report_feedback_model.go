package model

import (
	"time"

	reportModel "luctreports_backend/internals/features/reports/report/model"
	userModel "luctreports_backend/internals/features/users/user/model"
)

// ReportFeedbackModel is a star rating plus optional comment left by a user
// on a report. One row per (report, user) pair; the composite unique index
// backs the application-level duplicate check.
type ReportFeedbackModel struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Rating  int     `gorm:"not null" json:"rating"`
	Comment *string `gorm:"type:text" json:"comment,omitempty"`

	ReportID uint `gorm:"not null;uniqueIndex:idx_report_feedbacks_report_user" json:"reportId"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_report_feedbacks_report_user" json:"userId"`

	Report *reportModel.ReportModel `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"report,omitempty"`
	User   *userModel.UserModel     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ReportFeedbackModel) TableName() string {
	return "report_feedbacks"
}
