package repository

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shoppinglist/internal/config"
	"shoppinglist/internal/models"
)

// Open connects to the configured backing store. Development runs on a
// local sqlite file, production on postgres via DATABASE_URL.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database %s: %w", cfg.Path, err)
		}
		return db, nil
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the backing tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.ShoppingItem{})
}
