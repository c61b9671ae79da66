package config

import (
	"Panel-API/internal/api/handlers"
	"Panel-API/internal/api/routes"
	"Panel-API/internal/middleware"
	"Panel-API/internal/utils"
	"Panel-API/pkg/account"
	"Panel-API/pkg/coin"
	"Panel-API/pkg/coupon"
	"Panel-API/pkg/kv"
	"Panel-API/pkg/panel"
	"Panel-API/pkg/plan"
	"Panel-API/pkg/suspend"
	"Panel-API/pkg/user"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func NewApp(settings utils.Settings, store kv.Store) (*fiber.App, error) {
	validator := utils.NewValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()

	// setting up logging and limiter
	if err := os.MkdirAll(filepath.Dir(settings.Logging.File), os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		settings.Logging.File,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	if rate := settings.Website.RateLimit; !rate.Disabled {
		app.Use(limiter.New(limiter.Config{
			Max:        rate.Max,
			Expiration: time.Duration(rate.Window) * time.Second,
		}))
	}

	// utils
	panelClient := panel.NewClient(settings.Pterodactyl.Domain, settings.Pterodactyl.Key)

	// Repository
	userRepository := user.NewUserRepository(store)
	coinRepository := coin.NewCoinRepository(store)
	couponRepository := coupon.NewCouponRepository(store)
	planRepository := plan.NewPlanRepository(store)

	// Service
	reconciler := suspend.NewReconciler(settings, userRepository, planRepository, panelClient)
	reconciler.Start()
	accountService := account.NewAccountService(userRepository, coinRepository, planRepository, panelClient, settings)
	coinService := coin.NewCoinService(coinRepository, userRepository, validator)
	couponService := coupon.NewCouponService(couponRepository, validator)
	planService := plan.NewPlanService(planRepository, userRepository, reconciler, settings, validator)

	app.Hooks().OnShutdown(func() error {
		reconciler.Stop()
		return file.Close()
	})

	// Handler
	userHandler := handlers.NewUserHandler(accountService)
	coinHandler := handlers.NewCoinHandler(coinService)
	couponHandler := handlers.NewCouponHandler(couponService)
	planHandler := handlers.NewPlanHandler(planService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		Settings:      settings,
		UserHandler:   userHandler,
		CoinHandler:   coinHandler,
		CouponHandler: couponHandler,
		PlanHandler:   planHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
