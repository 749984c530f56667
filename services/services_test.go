package services

import (
	"testing"

	"campus-dining-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns a migrated in-memory database. The connection
// pool is pinned to one connection so every query sees the same
// in-memory store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Campus{},
		&models.Hall{},
		&models.MenuItem{},
		&models.ContactInfo{},
	))
	return db
}

// createBareHall inserts a hall without the default-menu cascade
func createBareHall(t *testing.T, db *gorm.DB) models.Hall {
	t.Helper()
	campus := models.Campus{Name: "Test Campus " + t.Name()}
	require.NoError(t, db.Create(&campus).Error)
	hall := models.Hall{Name: "Test Hall", CampusID: campus.ID}
	require.NoError(t, db.Create(&hall).Error)
	return hall
}
