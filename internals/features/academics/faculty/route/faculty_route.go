package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	facultyController "luctreports_backend/internals/features/academics/faculty/controller"
	authMw "luctreports_backend/internals/middlewares/auth"
)

// FacultyRoutes mounts /faculties. Reads are open to every authenticated
// role; writes belong to program leaders and admins.
func FacultyRoutes(r fiber.Router, db *gorm.DB) {
	ctl := facultyController.NewFacultyController(db)
	manage := authMw.OnlyRoles(constants.RoleErrorLeader("faculties"), constants.LeaderAndAbove...)

	faculties := r.Group("/faculties")
	faculties.Get("/", ctl.GetAll)
	faculties.Get("/:id", ctl.GetByID)
	faculties.Post("/", manage, ctl.Create)
	faculties.Put("/:id", manage, ctl.Update)
	faculties.Delete("/:id", manage, ctl.Delete)
}
