package models

import "time"

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100"`
	Email     string `gorm:"size:100"`
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
