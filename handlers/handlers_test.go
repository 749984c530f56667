package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"campus-dining-api/config"
	"campus-dining-api/middleware"
	"campus-dining-api/models"
	"campus-dining-api/routes"
	"campus-dining-api/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var phoneSeq atomic.Int64

// setupRouter wires the route table against a fresh in-memory database
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Campus{},
		&models.Hall{},
		&models.MenuItem{},
		&models.ContactInfo{},
	))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r, db
}

// createUser inserts an account with a unique phone and returns it
// with the plaintext password.
func createUser(t *testing.T, db *gorm.DB, role models.UserRole, campusID *string) (*models.User, string) {
	t.Helper()
	phone := fmt.Sprintf("+9198%08d", phoneSeq.Add(1))
	password := "password123"
	user, err := services.CreateUser(db, services.CreateUserInput{
		Name:     "Test " + string(role),
		Phone:    phone,
		Password: password,
		Role:     role,
		CampusID: campusID,
	})
	require.NoError(t, err)
	return user, password
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
