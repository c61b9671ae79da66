package config

import (
	migration "Panel-API/cmd/database/migrate"
	"Panel-API/internal/utils"
	"Panel-API/pkg/kv"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(settings utils.DatabaseSettings) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		settings.Host,
		settings.User,
		settings.Password,
		settings.Name,
		settings.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// NewStore opens the key-value backend selected by database.driver.
func NewStore(settings utils.Settings) (kv.Store, error) {
	if settings.Database.Driver == utils.DriverMemory {
		return kv.NewMemoryStore()
	}

	db, err := ConnectDB(settings.Database)
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		return nil, err
	}
	return kv.NewGormStore(db), nil
}
