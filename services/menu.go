package services

import (
	"time"

	"campus-dining-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultMeal describes the placeholder content for one meal slot
type DefaultMeal struct {
	Key       models.MealType
	Title     string
	TimeRange string
}

// DefaultMeals is the fixed daily meal table used when seeding new halls
var DefaultMeals = []DefaultMeal{
	{Key: models.MealBreakfast, Title: "Breakfast", TimeRange: "7:30 - 9:30 AM"},
	{Key: models.MealLunch, Title: "Lunch", TimeRange: "12:30 - 2:30 PM"},
	{Key: models.MealSnacks, Title: "Snacks", TimeRange: "5:00 - 6:30 PM"},
	{Key: models.MealDinner, Title: "Dinner", TimeRange: "7:30 - 9:30 PM"},
}

const placeholderSubtitle = "Tap edit to add menu items"

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ListMenuItems returns the items for one hall whose date falls within
// [day, day+1), ordered by meal type.
func ListMenuItems(db *gorm.DB, hallID string, date time.Time) ([]models.MenuItem, error) {
	day := StartOfDay(date)
	next := day.AddDate(0, 0, 1)

	var items []models.MenuItem
	err := db.Where("hall_id = ? AND date >= ? AND date < ?", hallID, day, next).
		Order("meal_type asc").
		Find(&items).Error
	return items, err
}

// AdjustLike applies delta to the like counter as a single store-side
// increment, so concurrent calls cannot lose updates. The counter has
// no floor: repeated decrements drive it negative.
func AdjustLike(db *gorm.DB, id string, delta int) (*models.MenuItem, error) {
	res := db.Model(&models.MenuItem{}).Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var item models.MenuItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SubmitRating folds one rating into the running mean:
// newMean = (oldMean*oldCount + rating) / (oldCount + 1). Raters are
// not tracked, so every call counts as an independent rating.
func SubmitRating(db *gorm.DB, id string, rating float64) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	total := item.Rating*float64(item.RatingCount) + rating
	item.RatingCount++
	item.Rating = total / float64(item.RatingCount)
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateMenuItem inserts an item for one slot. The date is truncated to
// midnight so the slot uniqueness index applies.
func CreateMenuItem(db *gorm.DB, item models.MenuItem) (*models.MenuItem, error) {
	item.Date = StartOfDay(item.Date)
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// MenuItemPatch carries the mutable fields of a menu item; nil means
// leave unchanged.
type MenuItemPatch struct {
	HallID    *string
	Date      *time.Time
	MealType  *models.MealType
	Title     *string
	Subtitle  *string
	TimeRange *string
}

// UpdateMenuItem applies a partial update, nil when the item is absent
func UpdateMenuItem(db *gorm.DB, id string, patch MenuItemPatch) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	if patch.HallID != nil {
		item.HallID = *patch.HallID
	}
	if patch.Date != nil {
		item.Date = StartOfDay(*patch.Date)
	}
	if patch.MealType != nil {
		item.MealType = *patch.MealType
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		item.Subtitle = *patch.Subtitle
	}
	if patch.TimeRange != nil {
		item.TimeRange = *patch.TimeRange
	}
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMenuItem removes an item, reporting whether it existed
func DeleteMenuItem(db *gorm.DB, id string) (bool, error) {
	res := db.Delete(&models.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SeedDefaultMenus inserts placeholder items for the next `days`
// calendar days and every meal slot of a hall, skipping slots that
// already have content. Existing items are never overwritten.
func SeedDefaultMenus(db *gorm.DB, hallID string, days int) error {
	start := StartOfDay(time.Now())
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		for _, meal := range DefaultMeals {
			item := models.MenuItem{HallID: hallID, Date: day, MealType: meal.Key}
			err := db.Where(models.MenuItem{HallID: hallID, Date: day, MealType: meal.Key}).
				Attrs(models.MenuItem{
					Title:     meal.Title,
					Subtitle:  placeholderSubtitle,
					TimeRange: meal.TimeRange,
				}).
				FirstOrCreate(&item).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// CopyMenuRange copies `days` consecutive days of menu content from
// fromDate to toDate within one hall. Source days with no items are
// skipped. Target slots are upserted: content is overwritten and
// likes/rating/ratingCount are reset to zero. Each day is an
// independent batch; a failure partway leaves earlier days copied.
func CopyMenuRange(db *gorm.DB, hallID string, fromDate, toDate time.Time, days int) error {
	src := StartOfDay(fromDate)
	dst := StartOfDay(toDate)

	for i := 0; i < days; i++ {
		day := src.AddDate(0, 0, i)
		target := dst.AddDate(0, 0, i)

		var items []models.MenuItem
		err := db.Where("hall_id = ? AND date >= ? AND date < ?", hallID, day, day.AddDate(0, 0, 1)).
			Find(&items).Error
		if err != nil {
			return err
		}
		if len(items) == 0 {
			continue
		}

		batch := make([]models.MenuItem, 0, len(items))
		for _, srcItem := range items {
			batch = append(batch, models.MenuItem{
				HallID:    hallID,
				Date:      target,
				MealType:  srcItem.MealType,
				Title:     srcItem.Title,
				Subtitle:  srcItem.Subtitle,
				TimeRange: srcItem.TimeRange,
			})
		}
		err = db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "hall_id"}, {Name: "date"}, {Name: "meal_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "subtitle", "time_range", "likes", "rating", "rating_count", "updated_at",
			}),
		}).Create(&batch).Error
		if err != nil {
			return err
		}
	}
	return nil
}
