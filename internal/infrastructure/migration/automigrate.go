// Package migration applies the database schema.
package migration

import (
	"gorm.io/gorm"

	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

// Run applies gorm auto-migration for every persistence model.
func Run(db *gorm.DB) error {
	logger.Info("running database migrations")
	return db.AutoMigrate(
		&models.UserModel{},
		&models.HotelModel{},
		&models.HotelDetailsModel{},
		&models.RoomNumberModel{},
		&models.BookingModel{},
		&models.PaymentModel{},
	)
}
