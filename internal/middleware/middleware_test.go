package middleware

import (
	"Panel-API/internal/utils"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(settings utils.APISettings) (*fiber.App, *bool) {
	reached := false
	app := fiber.New()
	app.Get("/api", NewMiddleware().APIAuthMiddleware(settings), func(c *fiber.Ctx) error {
		reached = true
		return c.JSON(fiber.Map{"status": true})
	})
	return app, &reached
}

func call(t *testing.T, app *fiber.App, auth string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/api", nil)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAPIAuthMiddleware(t *testing.T) {
	app, reached := newApp(utils.APISettings{Enabled: true, Code: "secret"})

	code, body := call(t, app, "Bearer secret")
	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"status":true}`, body)
	assert.True(t, *reached)
}

func TestAPIAuthMiddlewareRejects(t *testing.T) {
	app, reached := newApp(utils.APISettings{Enabled: true, Code: "secret"})

	for _, auth := range []string{"", "secret", "Bearer wrong", "bearer secret", "Bearer secretx"} {
		code, body := call(t, app, auth)
		assert.Equal(t, fiber.StatusUnauthorized, code, auth)
		assert.Equal(t, "Unauthorized", body, auth)
	}
	assert.False(t, *reached)
}

func TestAPIAuthMiddlewareEmptyCode(t *testing.T) {
	app, reached := newApp(utils.APISettings{Enabled: true})

	code, _ := call(t, app, "Bearer ")
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.False(t, *reached)
}

func TestAPIAuthMiddlewareDisabled(t *testing.T) {
	app, reached := newApp(utils.APISettings{Enabled: false, Code: "secret"})

	code, body := call(t, app, "Bearer secret")
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Disabled", body)
	assert.False(t, *reached)
}

func TestCORSMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewMiddleware().CORSMiddleware())
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(fiber.MethodGet, "/api", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://dashboard.example.com")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
