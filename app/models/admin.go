package models

type Admin struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"size:100;not null;uniqueIndex"`
	Password string `gorm:"size:255;not null"`
}

func (Admin) TableName() string {
	return "admin"
}
