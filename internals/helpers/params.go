package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam reads a numeric path parameter. A non-numeric value is treated
// the same as a missing row further down, so callers get a clean 400 here
// instead of a DB error later.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}
