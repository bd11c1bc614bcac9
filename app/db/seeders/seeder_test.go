package seeders

import (
	"fmt"
	"sync/atomic"
	"testing"

	"shopkart/app/models"
	"shopkart/app/models/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:seedtest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func TestEnsureDefaultAdminIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, EnsureDefaultAdmin(db))
	require.NoError(t, EnsureDefaultAdmin(db))

	var admins []models.Admin
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)

	assert.Equal(t, "admin", admins[0].Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("1234")))
}

func TestDBSeedFillsCatalog(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, DBSeed(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 20, count)
}
