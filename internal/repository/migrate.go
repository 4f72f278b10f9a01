package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package maps. Order
// matters for foreign keys: reference data first, then bookings and
// their payments.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&refreshTokenModel{},
		&hotelModel{},
		&roomModel{},
		&bookingModel{},
		&paymentModel{},
	)
}
