package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"luctreports_backend/internals/constants"
	userController "luctreports_backend/internals/features/users/user/controller"
	authMw "luctreports_backend/internals/middlewares/auth"
)

// UserRoutes mounts /users, admin-only end to end. Non-admin callers read
// their own record through /auth/me instead.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)
	manage := authMw.OnlyRoles(constants.RoleErrorAdmin("users"), constants.AdminOnly...)

	users := r.Group("/users", manage)
	users.Get("/", ctl.GetAll)
	users.Get("/:id", ctl.GetByID)
	users.Post("/", ctl.Create)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
