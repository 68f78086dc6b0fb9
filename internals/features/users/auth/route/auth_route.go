package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "luctreports_backend/internals/features/users/auth/controller"
	"luctreports_backend/internals/middlewares"
	authMw "luctreports_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /auth. Register and login are public behind stricter
// rate limits; logout and me require a valid token.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", authMw.AuthMiddleware(db), ctl.Logout)
	auth.Get("/me", authMw.AuthMiddleware(db), ctl.Me)
}
