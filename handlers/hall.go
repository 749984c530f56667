package handlers

import (
	"net/http"

	"campus-dining-api/config"
	"campus-dining-api/middleware"
	"campus-dining-api/models"
	"campus-dining-api/services"

	"github.com/gin-gonic/gin"
)

type CreateHallRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	CampusID string `json:"campusId" binding:"required"`
}

type UpdateHallRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	CampusID *string `json:"campusId"`
}

// GetHalls lists halls, optionally filtered by campus (public)
func GetHalls(c *gin.Context) {
	halls, err := services.ListHalls(config.DB, c.Query("campusId"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, halls)
}

// CreateHall adds a hall and seeds its default menu. A manager's
// campus assignment is forced to their own scope regardless of the
// request payload.
func CreateHall(c *gin.Context) {
	var req CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	campusID := req.CampusID
	claims := middleware.GetAuth(c)
	if claims != nil && claims.Role == models.RoleManager && claims.CampusID != "" {
		campusID = claims.CampusID
	}

	hall, err := services.CreateHall(config.DB, req.Name, campusID)
	if err != nil {
		storeError(c, err, "campusId", "name")
		return
	}
	c.JSON(http.StatusCreated, hall)
}

// UpdateHall applies a partial update; managers cannot move a hall
// outside their own campus.
func UpdateHall(c *gin.Context) {
	var req UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	patch := services.HallPatch{Name: req.Name, CampusID: req.CampusID}
	claims := middleware.GetAuth(c)
	if claims != nil && claims.Role == models.RoleManager && claims.CampusID != "" {
		scope := claims.CampusID
		patch.CampusID = &scope
	}

	hall, err := services.UpdateHall(config.DB, c.Param("id"), patch)
	if err != nil {
		storeError(c, err, "campusId", "name")
		return
	}
	if hall == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hall not found"})
		return
	}
	c.JSON(http.StatusOK, hall)
}

// DeleteHall removes a hall
func DeleteHall(c *gin.Context) {
	deleted, err := services.DeleteHall(config.DB, c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hall not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
