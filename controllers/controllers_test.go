package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appConfig "github.com/camila-moreno/turismo-reservas/config"
	"github.com/camila-moreno/turismo-reservas/middleware"
	"github.com/camila-moreno/turismo-reservas/models"
	"github.com/camila-moreno/turismo-reservas/services"
)

const testSecret = "test-session-secret"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
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
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupTestRouter wires the same route table main.go builds, against an
// in-memory database
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	appConfig.SetDB(db)

	cfg := &appConfig.Config{SessionSecret: testSecret, GoEnv: "test"}
	appConfig.SetConfig(cfg)

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")
	router.Use(middleware.LoadCurrentUser(cfg))

	router.GET("/", Home)
	router.GET("/registro/", ShowRegister)
	router.POST("/registro/", Register)
	router.GET("/login/", ShowLogin)
	router.POST("/login/", Login)
	router.GET("/logout/", Logout)
	router.GET("/hospedaje/", Lodging)
	router.GET("/actividad/", Activity)
	router.GET("/gastronomia/", Gastronomy)
	router.GET("/carrito/", Cart)

	protected := router.Group("/", middleware.RequireAuth())
	{
		protected.GET("/inicioregistrado/", RegisteredHome)
		protected.GET("/perfil/", ShowProfile)
		protected.POST("/perfil/", UpdateProfile)
		protected.GET("/listar_servicios_anfitrion", HostServices)
		protected.GET("/listar_reservas_anfitrion", HostReservations)
		protected.GET("/servicios/nuevo", ShowNewService)
		protected.POST("/servicios/nuevo", CreateService)
	}

	return router, db
}

func registerTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := services.Register(db, services.RegisterInput{
		Name: "Ana", Surname: "Torres", Email: email, Password: "pw123456",
	})
	require.NoError(t, err)
	return user
}

func makeHost(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	hostType, _, err := services.EnsureUserType(db, string(models.RoleHost))
	require.NoError(t, err)
	require.NoError(t, db.Model(user).Update("type_id", hostType.ID).Error)
	user.TypeID = &hostType.ID
	user.Type = hostType
}

func sessionCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()

	token, err := middleware.NewSessionToken(userID, testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func postForm(router *gin.Engine, path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

func getPage(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}
