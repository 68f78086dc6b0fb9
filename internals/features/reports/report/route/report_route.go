package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	reportController "luctreports_backend/internals/features/reports/report/controller"
	authMw "luctreports_backend/internals/middlewares/auth"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportController(db)
	manage := authMw.OnlyRoles(constants.RoleErrorReporter("reports"), constants.ReportingRoles...)

	reports := r.Group("/reports")
	// static segment before the :id wildcard
	reports.Get("/export", manage, ctl.Export)
	reports.Get("/", ctl.GetAll)
	reports.Get("/:id", ctl.GetByID)
	reports.Post("/", manage, ctl.Create)
	reports.Put("/:id", manage, ctl.Update)
	reports.Delete("/:id", manage, ctl.Delete)
}
