package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType is one of the four fixed daily meal slots
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnacks    MealType = "snacks"
	MealDinner    MealType = "dinner"
)

// ValidMealType reports whether m is one of the known meal slots
func ValidMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealSnacks, MealDinner:
		return true
	}
	return false
}

// MenuItem is the menu content for one (hall, day, meal) slot.
// Date is always truncated to local midnight, so the unique index
// enforces at most one item per slot.
type MenuItem struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	HallID      string    `json:"hallId" gorm:"size:36;not null;uniqueIndex:idx_menu_slot"`
	Date        time.Time `json:"date" gorm:"not null;uniqueIndex:idx_menu_slot"`
	MealType    MealType  `json:"mealType" gorm:"not null;uniqueIndex:idx_menu_slot"`
	Title       string    `json:"title" gorm:"not null"`
	Subtitle    string    `json:"subtitle" gorm:"not null"`
	TimeRange   string    `json:"timeRange" gorm:"not null"`
	Likes       int       `json:"likes" gorm:"not null;default:0"`
	Rating      float64   `json:"rating" gorm:"not null;default:0"`
	RatingCount int       `json:"ratingCount" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
