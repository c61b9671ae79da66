package routes

import (
	"Panel-API/internal/api/handlers"
	"Panel-API/internal/middleware"
	"Panel-API/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App           *fiber.App
	Settings      utils.Settings
	UserHandler   handlers.UserHandler
	CoinHandler   handlers.CoinHandler
	CouponHandler handlers.CouponHandler
	PlanHandler   handlers.PlanHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	api := c.App.Group("/api", c.Middleware.APIAuthMiddleware(c.Settings.API))

	api.Get("", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": true})
	})
	api.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	c.User(api)
	c.Coins(api)
	c.Coupons(api)
	c.Plans(api)
}

func (c *Config) User(api fiber.Router) {
	api.Get("/userinfo", c.UserHandler.GetUserInfo)
}

func (c *Config) Coins(api fiber.Router) {
	api.Post("/setcoins", c.CoinHandler.SetCoins)
}

func (c *Config) Coupons(api fiber.Router) {
	api.Post("/createcoupon", c.CouponHandler.CreateCoupon)
	api.Post("/revokecoupon", c.CouponHandler.RevokeCoupon)
}

func (c *Config) Plans(api fiber.Router) {
	api.Post("/setplan", c.PlanHandler.SetPlan)
	api.Post("/setresources", c.PlanHandler.SetResources)
}
