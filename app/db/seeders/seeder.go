package seeders

import (
	"log"

	"shopkart/app/db/fakers"
	"shopkart/app/helpers"
	"shopkart/app/models"

	"gorm.io/gorm"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "1234"
)

// EnsureDefaultAdmin seeds the fixed admin credential once. Safe to call on
// every startup; an existing row wins.
func EnsureDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Admin{}).Where("username = ?", defaultAdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.Admin{
		Username: defaultAdminUsername,
		Password: helpers.HashPassword(defaultAdminPassword),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("✅ Default admin account seeded.")
	return nil
}

// DBSeed fills the catalog with demo products for local development.
func DBSeed(db *gorm.DB) error {
	for i := 0; i < 20; i++ {
		product := fakers.ProductFaker()
		if err := db.Create(product).Error; err != nil {
			return err
		}
	}
	return nil
}
