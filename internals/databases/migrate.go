package database

import (
	"log"

	"gorm.io/gorm"

	classModel "luctreports_backend/internals/features/academics/class/model"
	courseModel "luctreports_backend/internals/features/academics/course/model"
	facultyModel "luctreports_backend/internals/features/academics/faculty/model"
	feedbackModel "luctreports_backend/internals/features/reports/feedback/model"
	reportModel "luctreports_backend/internals/features/reports/report/model"
	authModel "luctreports_backend/internals/features/users/auth/model"
	userModel "luctreports_backend/internals/features/users/user/model"
)

// Migrate syncs the schema on boot, in FK dependency order.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&facultyModel.FacultyModel{},
		&courseModel.CourseModel{},
		&classModel.ClassModel{},
		&reportModel.ReportModel{},
		&feedbackModel.ReportFeedbackModel{},
		&authModel.TokenBlacklist{},
	); err != nil {
		return err
	}
	log.Println("✅ All models migrated.")
	return nil
}
