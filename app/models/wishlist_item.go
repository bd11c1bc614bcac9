package models

import "time"

type WishlistItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	UserID    uint    `gorm:"index;not null"`
	User      User    `gorm:"foreignKey:UserID"`
	ProductID uint    `gorm:"index;not null"`
	Product   Product `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
}

func (WishlistItem) TableName() string {
	return "wishlist"
}
