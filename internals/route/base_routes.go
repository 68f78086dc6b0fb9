package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes mounts the endpoints that live outside /api.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"db":      false,
				"message": "Database connection error",
			})
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     true,
		})
	})
}
