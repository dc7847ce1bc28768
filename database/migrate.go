package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talentbridge_backend/internal/models"
)

// Connect opens the GORM connection. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey across drivers.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate migrates all models, including the compound unique index on
// applications(opportunity_id, applicant_id).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Opportunity{},
		&models.Application{},
		&models.Notification{},
	)
}
