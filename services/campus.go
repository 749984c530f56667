package services

import (
	"strings"

	"campus-dining-api/models"

	"gorm.io/gorm"
)

// ListCampuses returns all campuses sorted by name
func ListCampuses(db *gorm.DB) ([]models.Campus, error) {
	var campuses []models.Campus
	err := db.Order("name asc").Find(&campuses).Error
	return campuses, err
}

// CreateCampus inserts a campus with a trimmed, unique name
func CreateCampus(db *gorm.DB, name string) (*models.Campus, error) {
	campus := models.Campus{Name: strings.TrimSpace(name)}
	if err := db.Create(&campus).Error; err != nil {
		return nil, err
	}
	return &campus, nil
}

// UpdateCampus renames a campus, nil when the campus is absent
func UpdateCampus(db *gorm.DB, id, name string) (*models.Campus, error) {
	var campus models.Campus
	if err := db.First(&campus, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	campus.Name = strings.TrimSpace(name)
	if err := db.Save(&campus).Error; err != nil {
		return nil, err
	}
	return &campus, nil
}

// DeleteCampus removes a campus, reporting whether it existed.
// Halls still referencing the campus are left in place.
func DeleteCampus(db *gorm.DB, id string) (bool, error) {
	res := db.Delete(&models.Campus{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
