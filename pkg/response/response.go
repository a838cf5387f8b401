package response

import (
	"github.com/gofiber/fiber/v2"

	dtohttp "confgive/dto/http"
)

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func Success(c *fiber.Ctx, status int, data interface{}) error {
	if data != nil {
		return c.Status(status).JSON(fiber.Map{
			"success": true,
			"data":    data,
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"success": true,
	})
}

// Alert returns a provider alert with the form still usable: the donor may
// pick another payment method.
func Alert(c *fiber.Ctx, alert *dtohttp.ProviderAlert) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"alert":   alert,
	})
}
