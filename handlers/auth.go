package handlers

import (
	"net/http"
	"regexp"

	"campus-dining-api/config"
	"campus-dining-api/middleware"
	"campus-dining-api/models"
	"campus-dining-api/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// phoneRe matches the login identifier format: 10-15 digits with an
// optional leading +.
var phoneRe = regexp.MustCompile(`^\+?\d{10,15}$`)

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required,min=2"`
	Phone    string          `json:"phone" binding:"required"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
	CampusID *string         `json:"campusId"`
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"phone":    user.Phone,
		"role":     user.Role,
		"campusId": user.CampusID,
	}
}

// Login verifies phone/password and issues a token. Unknown phone and
// wrong password get the same response so accounts cannot be
// enumerated.
func Login(c *gin.Context) {
	var req LoginRequest
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

	user, err := services.FindUserByPhone(config.DB, req.Phone)
	if err != nil {
		storeError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": userView(user)})
}

// Register creates a new account (admin only) and issues a token for it
func Register(c *gin.Context) {
	var req RegisterRequest
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
	if req.Role == "" {
		req.Role = models.RoleViewer
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin, manager, or viewer"})
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
		Password: req.Password,
		Role:     req.Role,
		CampusID: req.CampusID,
	})
	if err != nil {
		storeError(c, err, "phone")
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": userView(user)})
}
