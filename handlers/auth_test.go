package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"campus-dining-api/config"
	"campus-dining-api/middleware"
	"campus-dining-api/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expiredToken(t *testing.T, user *models.User) string {
	t.Helper()
	claims := middleware.Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	require.NoError(t, err)
	return token
}

func TestMissingAndBadTokensRejectedIdentically(t *testing.T) {
	r, db := setupRouter(t)
	admin, _ := createUser(t, db, models.RoleAdmin, nil)

	missing := doJSON(t, r, http.MethodGet, "/api/users", "", nil)
	malformed := doJSON(t, r, http.MethodGet, "/api/users", "not-a-jwt", nil)
	expired := doJSON(t, r, http.MethodGet, "/api/users", expiredToken(t, admin), nil)

	requireStatus(t, missing, http.StatusUnauthorized)
	requireStatus(t, malformed, http.StatusUnauthorized)
	requireStatus(t, expired, http.StatusUnauthorized)

	assert.Equal(t, missing.Body.String(), malformed.Body.String())
	assert.Equal(t, missing.Body.String(), expired.Body.String())
}

func TestRoleMismatchIsForbiddenNotUnauthorized(t *testing.T) {
	r, db := setupRouter(t)
	viewer, _ := createUser(t, db, models.RoleViewer, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users", tokenFor(t, viewer), nil)
	requireStatus(t, w, http.StatusForbidden)
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	r, db := setupRouter(t)
	user, _ := createUser(t, db, models.RoleViewer, nil)

	unknown := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"phone": "+919700000001", "password": "whatever1",
	})
	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"phone": user.Phone, "password": "not-the-password",
	})

	requireStatus(t, unknown, http.StatusUnauthorized)
	requireStatus(t, wrongPassword, http.StatusUnauthorized)
	assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
}

func TestLoginIssuesUsableToken(t *testing.T) {
	r, db := setupRouter(t)
	admin, password := createUser(t, db, models.RoleAdmin, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"phone": admin.Phone, "password": password,
	})
	requireStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// The issued token grants access to an admin endpoint.
	list := doJSON(t, r, http.MethodGet, "/api/users", token, nil)
	requireStatus(t, list, http.StatusOK)
}

func TestRegisterRequiresAdmin(t *testing.T) {
	r, db := setupRouter(t)
	manager, _ := createUser(t, db, models.RoleManager, nil)
	admin, _ := createUser(t, db, models.RoleAdmin, nil)

	payload := map[string]interface{}{
		"name": "New Viewer", "phone": "+919600000001", "password": "viewer123",
	}

	asManager := doJSON(t, r, http.MethodPost, "/api/auth/register", tokenFor(t, manager), payload)
	requireStatus(t, asManager, http.StatusForbidden)

	asAdmin := doJSON(t, r, http.MethodPost, "/api/auth/register", tokenFor(t, admin), payload)
	requireStatus(t, asAdmin, http.StatusCreated)
	body := decodeBody(t, asAdmin)
	assert.NotEmpty(t, body["token"])

	duplicate := doJSON(t, r, http.MethodPost, "/api/auth/register", tokenFor(t, admin), payload)
	requireStatus(t, duplicate, http.StatusConflict)
}

func TestLoginValidationIssues(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"phone": "abc", "password": "pw",
	})
	requireStatus(t, w, http.StatusBadRequest)
	body := decodeBody(t, w)
	assert.Equal(t, "Validation failed", body["error"])
	assert.NotEmpty(t, body["issues"])
}
