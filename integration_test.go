package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/camila-moreno/turismo-reservas/config"
	"github.com/camila-moreno/turismo-reservas/middleware"
	"github.com/camila-moreno/turismo-reservas/models"
	"github.com/camila-moreno/turismo-reservas/services"
)

// setupIntegrationRouter boots the real route table against an in-memory
// database, the same way main does against PostgreSQL
func setupIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.UserType{},
		&models.User{},
		&models.ServiceType{},
		&models.Service{},
		&models.ReservationStatus{},
		&models.Reservation{},
		&models.ReservationLineItem{},
		&models.Cart{},
		&models.CartLineItem{},
		&models.PaymentMethod{},
		&models.PaymentStatus{},
		&models.Payment{},
	))
	config.SetDB(db)

	cfg := &config.Config{SessionSecret: "integration-secret", GoEnv: "test"}
	config.SetConfig(cfg)

	require.NoError(t, services.SeedLookupTables(db))

	return setupRouter(cfg)
}

// TestRegisterLoginProfileFlow walks the full user journey: sign up, sign
// in, and view the profile page with the established session
func TestRegisterLoginProfileFlow(t *testing.T) {
	router := setupIntegrationRouter(t)

	// Register
	form := url.Values{
		"name":             {"Ana"},
		"surname":          {"Torres"},
		"email":            {"ana@example.com"},
		"phone":            {"12345678"},
		"password":         {"pw123456"},
		"confirm_password": {"pw123456"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/registro/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login/", w.Header().Get("Location"))

	// Login
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(url.Values{
		"email":    {"ana@example.com"},
		"password": {"pw123456"},
	}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/inicioregistrado/", w.Header().Get("Location"))

	var session *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			session = cookie
		}
	}
	require.NotNil(t, session, "login should set the session cookie")

	// Profile with the session
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/perfil/", nil)
	req.AddCookie(session)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")

	// Profile without the session redirects back to login
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/perfil/", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

// TestHealthEndpointIntegration tests the /api/v1/health endpoint with full routing
func TestHealthEndpointIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Expected status 200 OK")

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Reservation web application is running", response["message"])
}

// TestPublicPagesRenderWithoutSession tests that every public page is
// reachable anonymously
func TestPublicPagesRenderWithoutSession(t *testing.T) {
	router := setupIntegrationRouter(t)

	paths := []string{"/", "/registro/", "/login/", "/hospedaje/", "/actividad/", "/gastronomia/", "/carrito/"}
	for _, path := range paths {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Expected %s to render anonymously", path)
	}
}
