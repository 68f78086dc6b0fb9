package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	feedbackController "luctreports_backend/internals/features/reports/feedback/controller"
	authMw "luctreports_backend/internals/middlewares/auth"
)

// ReportFeedbackRoutes mounts /reportFeedbacks. Any authenticated user may
// rate a report; deletion is an admin action.
func ReportFeedbackRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feedbackController.NewReportFeedbackController(db)
	remove := authMw.OnlyRoles(constants.RoleErrorAdmin("report feedback"), constants.AdminOnly...)

	feedbacks := r.Group("/reportFeedbacks")
	// static segment before the :id wildcard
	feedbacks.Get("/report/:reportId", ctl.GetByReport)
	feedbacks.Get("/", ctl.GetAll)
	feedbacks.Get("/:id", ctl.GetByID)
	feedbacks.Post("/:reportId", ctl.Create)
	feedbacks.Put("/:id", ctl.Update)
	feedbacks.Delete("/:id", remove, ctl.Delete)
}
