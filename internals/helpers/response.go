package helper

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResource writes the success envelope the API speaks everywhere:
// {"status":"success", "<key>": resource}. The key is the entity name
// (singular) or its plural for lists.
func JsonResource(c *fiber.Ctx, code int, key string, resource interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"status": "success",
		key:      resource,
	})
}

// JsonMessage is the success envelope for operations that return no entity
// (deletes): {"status":"success","message":...}.
func JsonMessage(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "success",
		"message": message,
	})
}

// JsonError writes a bare {"message":...} failure body.
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// JsonServerError surfaces an unexpected ORM/runtime failure as a 500 with a
// generic message plus the underlying error string.
func JsonServerError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Server error",
		"error":   err.Error(),
	})
}
