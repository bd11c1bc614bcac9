package repositories

import (
	"context"

	"shopkart/app/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// GetAll returns messages newest first, the order the admin view shows them.
func (r *contactRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
