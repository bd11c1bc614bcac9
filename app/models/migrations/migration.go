package migrations

import (
	"shopkart/app/models"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.Order{}, &models.Admin{}, &models.User{}, &models.WishlistItem{}, &models.ContactMessage{})
}
