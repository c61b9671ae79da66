package middleware

import (
	"Panel-API/internal/metrics"
	"Panel-API/internal/utils"
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		APIAuthMiddleware(settings utils.APISettings) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	})
}

// APIAuthMiddleware lets a request through only when the API is enabled and
// the Authorization header carries the configured bearer code.
func (m *middleware) APIAuthMiddleware(settings utils.APISettings) fiber.Handler {
	expected := []byte("Bearer " + settings.Code)

	return func(c *fiber.Ctx) error {
		if !settings.Enabled {
			metrics.AuthRejections.WithLabelValues("disabled").Inc()
			return c.Status(fiber.StatusForbidden).SendString("Disabled")
		}

		auth := []byte(c.Get(fiber.HeaderAuthorization))
		if settings.Code == "" || subtle.ConstantTimeCompare(auth, expected) != 1 {
			metrics.AuthRejections.WithLabelValues("unauthorized").Inc()
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		return c.Next()
	}
}
