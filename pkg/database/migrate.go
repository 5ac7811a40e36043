package database

import (
	"go-farmpet-api/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables. Order matters: purchases reference the other three.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Medication{},
		&model.Client{},
		&model.Pet{},
		&model.Purchase{},
	)
}
