package repositories

import (
	"context"

	"shopkart/app/models"

	"gorm.io/gorm"
)

type WishlistRepository interface {
	Add(ctx context.Context, userID, productID uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error)
	Remove(ctx context.Context, id, userID uint) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db}
}

// Add inserts unconditionally; favoriting the same product twice yields two
// entries, matching the storefront's behavior.
func (r *wishlistRepository) Add(ctx context.Context, userID, productID uint) error {
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	return r.db.WithContext(ctx).Create(&item).Error
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Remove is scoped to the owning user so nobody can delete entries from
// another user's wishlist by guessing ids.
func (r *wishlistRepository) Remove(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.WishlistItem{}).Error
}
