package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	courseController "luctreports_backend/internals/features/academics/course/controller"
	authMw "luctreports_backend/internals/middlewares/auth"
)

func CourseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseController.NewCourseController(db)
	manage := authMw.OnlyRoles(constants.RoleErrorLeader("courses"), constants.LeaderAndAbove...)

	courses := r.Group("/courses")
	courses.Get("/", ctl.GetAll)
	courses.Get("/:id", ctl.GetByID)
	courses.Post("/", manage, ctl.Create)
	courses.Put("/:id", manage, ctl.Update)
	courses.Delete("/:id", manage, ctl.Delete)
}
