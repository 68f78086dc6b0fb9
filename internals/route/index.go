package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "luctreports_backend/internals/features/academics/class/route"
	courseRoute "luctreports_backend/internals/features/academics/course/route"
	facultyRoute "luctreports_backend/internals/features/academics/faculty/route"
	feedbackRoute "luctreports_backend/internals/features/reports/feedback/route"
	reportRoute "luctreports_backend/internals/features/reports/report/route"
	authRoute "luctreports_backend/internals/features/users/auth/route"
	userRoute "luctreports_backend/internals/features/users/user/route"
	authMw "luctreports_backend/internals/middlewares/auth"
)

// SetupRoutes wires every resource under /api. Auth endpoints manage their
// own middleware; everything else sits behind the JWT check, with per-route
// role gates in the feature route files.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	protected := api.Group("", authMw.AuthMiddleware(db))

	log.Println("[INFO] Setting up resource routes...")
	facultyRoute.FacultyRoutes(protected, db)
	courseRoute.CourseRoutes(protected, db)
	classRoute.ClassRoutes(protected, db)
	userRoute.UserRoutes(protected, db)
	reportRoute.ReportRoutes(protected, db)
	feedbackRoute.ReportFeedbackRoutes(protected, db)
}
