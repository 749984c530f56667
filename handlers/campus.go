package handlers

import (
	"net/http"

	"campus-dining-api/config"
	"campus-dining-api/services"

	"github.com/gin-gonic/gin"
)

type CampusRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}

// GetCampuses lists all campuses (public)
func GetCampuses(c *gin.Context) {
	campuses, err := services.ListCampuses(config.DB)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, campuses)
}

// CreateCampus adds a campus — admin only
func CreateCampus(c *gin.Context) {
	var req CampusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	campus, err := services.CreateCampus(config.DB, req.Name)
	if err != nil {
		storeError(c, err, "name")
		return
	}
	c.JSON(http.StatusCreated, campus)
}

// UpdateCampus renames a campus — admin only
func UpdateCampus(c *gin.Context) {
	var req CampusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	campus, err := services.UpdateCampus(config.DB, c.Param("id"), req.Name)
	if err != nil {
		storeError(c, err, "name")
		return
	}
	if campus == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campus not found"})
		return
	}
	c.JSON(http.StatusOK, campus)
}

// DeleteCampus removes a campus — admin only
func DeleteCampus(c *gin.Context) {
	deleted, err := services.DeleteCampus(config.DB, c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campus not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
