package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FieldIssue is one field-level validation failure
type FieldIssue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// bindError reports a request binding failure. Validator errors become
// a per-field issue list; anything else (malformed JSON) is reported
// as-is.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]FieldIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, FieldIssue{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: "failed on the '" + fe.Tag() + "' rule",
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "issues": issues})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// storeError translates persistence failures at the handler boundary:
// unique-index violations become conflicts naming the fields involved,
// everything else is logged and reported generically.
func storeError(c *gin.Context, err error, conflictFields ...string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.JSON(http.StatusConflict, gin.H{"error": "Duplicate value", "fields": conflictFields})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled storage error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
