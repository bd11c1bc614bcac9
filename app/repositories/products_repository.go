package repositories

import (
	"context"

	"shopkart/app/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRepository interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, keyword, category string) ([]models.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetRelated(ctx context.Context, category string, excludeID uint, limit int) ([]models.Product, error)
	ResolveCart(ctx context.Context, ids []uint) (*models.Cart, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db}
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := p.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) Search(ctx context.Context, keyword, category string) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).Model(&models.Product{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Distinct("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetRelated(ctx context.Context, category string, excludeID uint, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("category = ? AND id != ?", category, excludeID).
		Limit(limit).
		Find(&products).Error
	return products, err
}

// ResolveCart maps a session id sequence onto catalog rows. Duplicate ids
// become repeated lines; ids with no matching row are dropped and the total
// only sums what resolved.
func (p *productRepository) ResolveCart(ctx context.Context, ids []uint) (*models.Cart, error) {
	cart := &models.Cart{Total: decimal.Zero}
	if len(ids) == 0 {
		return cart, nil
	}

	var products []models.Product
	if err := p.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	for _, id := range ids {
		product, ok := byID[id]
		if !ok {
			continue
		}
		cart.Items = append(cart.Items, models.CartItem{Product: product})
		cart.Total = cart.Total.Add(product.Price)
	}

	return cart, nil
}
