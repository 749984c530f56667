package handlers

import (
	"net/http"

	"campus-dining-api/models"

	"github.com/gin-gonic/gin"
)

type SuggestionRequest struct {
	HallID   string          `json:"hallId" binding:"required"`
	MealType models.MealType `json:"mealType" binding:"required,oneof=breakfast lunch snacks dinner"`
	Text     string          `json:"text" binding:"required,min=3"`
}

// PostSuggestion validates and acknowledges a free-text suggestion.
// Suggestions are not persisted.
func PostSuggestion(c *gin.Context) {
	var req SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Suggestion received", "data": req})
}
