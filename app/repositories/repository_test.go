package repositories

import (
	"fmt"
	"sync/atomic"
	"testing"

	"shopkart/app/models"
	"shopkart/app/models/migrations"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a uniquely named shared-cache memory database so every
// pooled connection sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, category string, price float64) models.Product {
	t.Helper()

	product := models.Product{
		Name:     name,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Image:    "/static/images/placeholder1.jpg",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
