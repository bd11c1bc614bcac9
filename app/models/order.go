package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending = "Pending"
)

type Order struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	Code          string          `gorm:"size:36;uniqueIndex;not null"`
	UserID        *uint           `gorm:"index"`
	Name          string          `gorm:"size:100"`
	Email         string          `gorm:"size:100"`
	Address       string          `gorm:"type:text"`
	PaymentMethod string          `gorm:"size:50"`
	Total         decimal.Decimal `gorm:"type:decimal(16,2)"`
	Status        string          `gorm:"size:20;default:'Pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.Code == "" {
		o.Code = "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return
}
