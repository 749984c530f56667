package services

import (
	"campus-dining-api/models"

	"gorm.io/gorm"
)

// DefaultMenuHorizonDays is how many days ahead a new hall gets
// placeholder menu items.
const DefaultMenuHorizonDays = 7

// ListHalls returns halls sorted by name, optionally filtered by campus
func ListHalls(db *gorm.DB, campusID string) ([]models.Hall, error) {
	var halls []models.Hall
	query := db.Order("name asc")
	if campusID != "" {
		query = query.Where("campus_id = ?", campusID)
	}
	err := query.Find(&halls).Error
	return halls, err
}

// GetHall fetches one hall, nil when absent
func GetHall(db *gorm.DB, id string) (*models.Hall, error) {
	var hall models.Hall
	if err := db.First(&hall, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &hall, nil
}

// CreateHall inserts a hall and seeds its placeholder menu for the
// coming week.
func CreateHall(db *gorm.DB, name, campusID string) (*models.Hall, error) {
	hall := models.Hall{Name: name, CampusID: campusID}
	if err := db.Create(&hall).Error; err != nil {
		return nil, err
	}
	if err := SeedDefaultMenus(db, hall.ID, DefaultMenuHorizonDays); err != nil {
		return nil, err
	}
	return &hall, nil
}

// HallPatch carries the mutable hall fields; nil means leave unchanged
type HallPatch struct {
	Name     *string
	CampusID *string
}

// UpdateHall applies a partial update, nil when the hall is absent
func UpdateHall(db *gorm.DB, id string, patch HallPatch) (*models.Hall, error) {
	var hall models.Hall
	if err := db.First(&hall, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	if patch.Name != nil {
		hall.Name = *patch.Name
	}
	if patch.CampusID != nil {
		hall.CampusID = *patch.CampusID
	}
	if err := db.Save(&hall).Error; err != nil {
		return nil, err
	}
	return &hall, nil
}

// DeleteHall removes a hall, reporting whether it existed
func DeleteHall(db *gorm.DB, id string) (bool, error) {
	res := db.Delete(&models.Hall{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
