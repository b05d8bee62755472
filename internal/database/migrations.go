package database

import (
	"fmt"

	"github.com/yukikurage/client-portal-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every persisted model, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Account{},
		&models.Profile{},
		&models.Task{},
	}
}

// Migrate creates or updates the tables and indexes for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
