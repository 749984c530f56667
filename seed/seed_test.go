package seed

import (
	"testing"

	"campus-dining-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestRunPopulatesReferenceData(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))

	var campuses, halls, items, contacts, users int64
	require.NoError(t, db.Model(&models.Campus{}).Count(&campuses).Error)
	require.NoError(t, db.Model(&models.Hall{}).Count(&halls).Error)
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&models.ContactInfo{}).Count(&contacts).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)

	assert.EqualValues(t, 16, campuses)
	assert.EqualValues(t, 33, halls)
	assert.EqualValues(t, 33*7*4, items)
	assert.EqualValues(t, 1, contacts)
	assert.EqualValues(t, 1, users)

	var admin models.User
	require.NoError(t, db.First(&admin, "phone = ?", "+919999888777").Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestRunIsRepeatable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))
	require.NoError(t, Run(db), "re-seeding wipes and repopulates")

	var campuses int64
	require.NoError(t, db.Model(&models.Campus{}).Count(&campuses).Error)
	assert.EqualValues(t, 16, campuses)
}
