package handlers

import (
	"net/http"
	"time"

	"campus-dining-api/config"
	"campus-dining-api/middleware"
	"campus-dining-api/models"
	"campus-dining-api/services"

	"github.com/gin-gonic/gin"
)

type LikeRequest struct {
	Delta *int `json:"delta" binding:"required,min=-1,max=1"`
}

type RatingRequest struct {
	Rating *float64 `json:"rating" binding:"required,min=0,max=5"`
}

type CreateMenuItemRequest struct {
	HallID    string          `json:"hallId" binding:"required"`
	Date      string          `json:"date" binding:"required"`
	MealType  models.MealType `json:"mealType" binding:"required,oneof=breakfast lunch snacks dinner"`
	Title     string          `json:"title" binding:"required,min=2"`
	Subtitle  string          `json:"subtitle" binding:"required,min=2"`
	TimeRange string          `json:"timeRange" binding:"required,min=2"`
}

type UpdateMenuItemRequest struct {
	HallID    *string          `json:"hallId"`
	Date      *string          `json:"date"`
	MealType  *models.MealType `json:"mealType" binding:"omitempty,oneof=breakfast lunch snacks dinner"`
	Title     *string          `json:"title" binding:"omitempty,min=2"`
	Subtitle  *string          `json:"subtitle" binding:"omitempty,min=2"`
	TimeRange *string          `json:"timeRange" binding:"omitempty,min=2"`
}

type CopyMenuRequest struct {
	HallID   string `json:"hallId" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Days     int    `json:"days" binding:"required,min=1,max=60"`
}

// parseDate accepts a plain calendar date or a full timestamp
func parseDate(s string) (time.Time, bool) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), true
	}
	return time.Time{}, false
}

func invalidDate(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "issues": []FieldIssue{
		{Field: field, Rule: "date", Message: "failed on the 'date' rule"},
	}})
}

// hallInScope checks the manager campus restriction for a hall. Admins
// always pass; a manager passes only when the hall belongs to their
// campus. A missing hall fails closed.
func hallInScope(c *gin.Context, hallID string) (bool, error) {
	claims := middleware.GetAuth(c)
	if claims == nil || claims.Role != models.RoleManager {
		return true, nil
	}
	hall, err := services.GetHall(config.DB, hallID)
	if err != nil {
		return false, err
	}
	if hall == nil {
		return false, nil
	}
	return hall.CampusID == claims.CampusID, nil
}

// GetMenu lists the items for one hall and day (public)
func GetMenu(c *gin.Context) {
	hallID := c.Query("hallId")
	dateStr := c.Query("date")
	if hallID == "" || dateStr == "" {
		var issues []FieldIssue
		if hallID == "" {
			issues = append(issues, FieldIssue{Field: "hallId", Rule: "required", Message: "failed on the 'required' rule"})
		}
		if dateStr == "" {
			issues = append(issues, FieldIssue{Field: "date", Rule: "required", Message: "failed on the 'required' rule"})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "issues": issues})
		return
	}
	date, ok := parseDate(dateStr)
	if !ok {
		invalidDate(c, "date")
		return
	}
	items, err := services.ListMenuItems(config.DB, hallID, date)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// LikeMenuItem adjusts the like counter by -1, 0 or +1 (public)
func LikeMenuItem(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	item, err := services.AdjustLike(config.DB, c.Param("id"), *req.Delta)
	if err != nil {
		storeError(c, err)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// RateMenuItem folds one rating into the item's running mean (public)
func RateMenuItem(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	item, err := services.SubmitRating(config.DB, c.Param("id"), *req.Rating)
	if err != nil {
		storeError(c, err)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateMenuItem adds an item for one slot — admin or scoped manager
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		invalidDate(c, "date")
		return
	}

	allowed, err := hallInScope(c, req.HallID)
	if err != nil {
		storeError(c, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	item, err := services.CreateMenuItem(config.DB, models.MenuItem{
		HallID:    req.HallID,
		Date:      date,
		MealType:  req.MealType,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		TimeRange: req.TimeRange,
	})
	if err != nil {
		storeError(c, err, "hallId", "date", "mealType")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem applies a partial update — admin or scoped manager
func UpdateMenuItem(c *gin.Context) {
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	patch := services.MenuItemPatch{
		HallID:    req.HallID,
		MealType:  req.MealType,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		TimeRange: req.TimeRange,
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			invalidDate(c, "date")
			return
		}
		patch.Date = &date
	}

	if req.HallID != nil {
		allowed, err := hallInScope(c, *req.HallID)
		if err != nil {
			storeError(c, err)
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
	}

	item, err := services.UpdateMenuItem(config.DB, c.Param("id"), patch)
	if err != nil {
		storeError(c, err, "hallId", "date", "mealType")
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes an item — admin or manager
func DeleteMenuItem(c *gin.Context) {
	deleted, err := services.DeleteMenuItem(config.DB, c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CopyMenu bulk-copies a date range of menu content within a hall —
// admin or scoped manager. Day batches are independent, so a failure
// partway leaves earlier days copied.
func CopyMenu(c *gin.Context) {
	var req CopyMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	fromDate, ok := parseDate(req.FromDate)
	if !ok {
		invalidDate(c, "fromDate")
		return
	}
	toDate, ok := parseDate(req.ToDate)
	if !ok {
		invalidDate(c, "toDate")
		return
	}

	allowed, err := hallInScope(c, req.HallID)
	if err != nil {
		storeError(c, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := services.CopyMenuRange(config.DB, req.HallID, fromDate, toDate, req.Days); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
