package migration

import (
	"Panel-API/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.KeyValue{}); err != nil {
		return fmt.Errorf("migrating key value store: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
