package main

import (
	"Panel-API/cmd/config"
	"Panel-API/internal/utils"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("loading .env: %v", err)
	}

	settings, err := utils.LoadSettings(utils.SettingsPath())
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}

	store, err := config.NewStore(settings)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}

	app, err := config.NewApp(settings, store)
	if err != nil {
		log.Fatalf("building app: %v", err)
	}

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", settings.Website.Port)); err != nil {
			log.Fatalf("listening: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
