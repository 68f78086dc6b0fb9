package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	classController "luctreports_backend/internals/features/academics/class/controller"
	authMw "luctreports_backend/internals/middlewares/auth"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)
	manage := authMw.OnlyRoles(constants.RoleErrorLeader("classes"), constants.LeaderAndAbove...)

	classes := r.Group("/classes")
	classes.Get("/", ctl.GetAll)
	classes.Get("/:id", ctl.GetByID)
	classes.Post("/", manage, ctl.Create)
	classes.Put("/:id", manage, ctl.Update)
	classes.Delete("/:id", manage, ctl.Delete)
}
