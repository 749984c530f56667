package handlers

import (
	"net/http"

	"campus-dining-api/config"
	"campus-dining-api/middleware"
	"campus-dining-api/models"
	"campus-dining-api/services"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required,min=2"`
	Phone    string          `json:"phone" binding:"required"`
	Email    *string         `json:"email" binding:"omitempty,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required,oneof=admin manager viewer"`
	CampusID *string         `json:"campusId"`
}

type UpdateUserRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=2"`
	Phone    *string          `json:"phone"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Password *string          `json:"password" binding:"omitempty,min=6"`
	Role     *models.UserRole `json:"role" binding:"omitempty,oneof=admin manager viewer"`
	CampusID *string          `json:"campusId"`
}

// GetUsers lists all accounts — admin only
func GetUsers(c *gin.Context) {
	users, err := services.ListUsers(config.DB)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser adds an account — admin only
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !phoneRe.MatchString(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "issues": []FieldIssue{
			{Field: "Phone", Rule: "phone", Message: "failed on the 'phone' rule"},
		}})
		return
	}

	existing, err := services.FindUserByPhone(config.DB, req.Phone)
	if err != nil {
		storeError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Phone already in use", "fields": []string{"phone"}})
		return
	}

	user, err := services.CreateUser(config.DB, services.CreateUserInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		CampusID: req.CampusID,
	})
	if err != nil {
		storeError(c, err, "phone", "email")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser applies a partial update. Admins may edit anyone; other
// callers may only edit themselves, and privileged fields (role,
// campus scope) are stripped from a self-update.
func UpdateUser(c *gin.Context) {
	claims := middleware.GetAuth(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	isAdmin := claims.Role == models.RoleAdmin
	isSelf := claims.UserID == c.Param("id")
	if !isAdmin && !isSelf {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.Phone != nil && !phoneRe.MatchString(*req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "issues": []FieldIssue{
			{Field: "Phone", Rule: "phone", Message: "failed on the 'phone' rule"},
		}})
		return
	}

	patch := services.UserPatch{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		CampusID: req.CampusID,
	}
	if !isAdmin {
		patch.Role = nil
		patch.CampusID = nil
	}

	user, err := services.UpdateUser(config.DB, c.Param("id"), patch)
	if err != nil {
		storeError(c, err, "phone", "email")
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account — admin only
func DeleteUser(c *gin.Context) {
	deleted, err := services.DeleteUser(config.DB, c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
