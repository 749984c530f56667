package handlers

import (
	"net/http"

	"campus-dining-api/config"
	"campus-dining-api/services"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=3"`
	Address string `json:"address" binding:"required,min=3"`
}

// GetContact returns the contact record, creating it with defaults on
// first read (public)
func GetContact(c *gin.Context) {
	info, err := services.GetContactInfo(config.DB)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpdateContact overwrites the contact record — admin only
func UpdateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	info, err := services.UpsertContactInfo(config.DB, req.Email, req.Phone, req.Address)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
