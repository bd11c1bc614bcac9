package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:255;not null"`
	Category    string          `gorm:"size:100;index"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Image       string          `gorm:"size:255"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
