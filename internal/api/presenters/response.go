package presenters

import (
	"Panel-API/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func StatusResponse(c *fiber.Ctx, status string) error {
	return c.JSON(fiber.Map{"status": status})
}

func SuccessResponse(c *fiber.Ctx) error {
	return StatusResponse(c, domain.StatusSuccess)
}

// ErrorResponse answers validation failures with their status message.
// Anything else goes back to fiber and ends up as a 500.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var statusErr domain.StatusError
	if errors.As(err, &statusErr) {
		return StatusResponse(c, statusErr.Error())
	}
	return err
}
