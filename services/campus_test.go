package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCampusTrimsName(t *testing.T) {
	db := openTestDB(t)
	campus, err := CreateCampus(db, "  North Campus  ")
	require.NoError(t, err)
	assert.Equal(t, "North Campus", campus.Name)
	assert.NotEmpty(t, campus.ID)
}

func TestCreateCampusDuplicateNameConflicts(t *testing.T) {
	db := openTestDB(t)
	_, err := CreateCampus(db, "Main Campus")
	require.NoError(t, err)

	_, err = CreateCampus(db, "Main Campus")
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestListCampusesSortedByName(t *testing.T) {
	db := openTestDB(t)
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		_, err := CreateCampus(db, name)
		require.NoError(t, err)
	}
	campuses, err := ListCampuses(db)
	require.NoError(t, err)
	require.Len(t, campuses, 3)
	assert.Equal(t, "Alpha", campuses[0].Name)
	assert.Equal(t, "Mid", campuses[1].Name)
	assert.Equal(t, "Zeta", campuses[2].Name)
}

func TestUpdateCampusAbsent(t *testing.T) {
	db := openTestDB(t)
	campus, err := UpdateCampus(db, "missing", "Renamed")
	require.NoError(t, err)
	assert.Nil(t, campus)
}

func TestDeleteCampus(t *testing.T) {
	db := openTestDB(t)
	campus, err := CreateCampus(db, "Doomed")
	require.NoError(t, err)

	deleted, err := DeleteCampus(db, campus.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = DeleteCampus(db, campus.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestHallNameUniquePerCampusOnly(t *testing.T) {
	db := openTestDB(t)
	first, err := CreateCampus(db, "First")
	require.NoError(t, err)
	second, err := CreateCampus(db, "Second")
	require.NoError(t, err)

	_, err = CreateHall(db, "Main Mess", first.ID)
	require.NoError(t, err)

	// Same name on another campus is fine.
	_, err = CreateHall(db, "Main Mess", second.ID)
	require.NoError(t, err)

	// Same name on the same campus conflicts.
	_, err = CreateHall(db, "Main Mess", first.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
