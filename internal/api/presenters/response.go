package presenters

import (
	"Coffee-Shop-API/domain"

	"github.com/gofiber/fiber/v2"
)

// DrinksResponse wraps one or more drinks in the success envelope.
func DrinksResponse(c *fiber.Ctx, drinks []domain.DrinkResponse) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"drinks":  drinks,
	})
}

// DeleteResponse echoes the id of the removed drink.
func DeleteResponse(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"delete":  id,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   status,
		"message": message,
	})
}
