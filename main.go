package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/camila-moreno/turismo-reservas/config"
	"github.com/camila-moreno/turismo-reservas/controllers"
	"github.com/camila-moreno/turismo-reservas/middleware"
	"github.com/camila-moreno/turismo-reservas/models"
	"github.com/camila-moreno/turismo-reservas/services"
)

func main() {
	log.Println("Starting reservation web server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetConfig(cfg)

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := config.GetDB()
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
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if err := services.SeedLookupTables(db); err != nil {
		log.Printf("warning: lookup table seeding incomplete: %v", err)
	}

	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Printf("warning: photo storage unavailable: %v", err)
		} else {
			services.InitImageService(s3Service)
			log.Println("Photo storage initialized")
		}
	}

	router := setupRouter(cfg)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the route table: public pages, the
// registration/login pair, and the session-protected pages
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.LoadHTMLGlob("templates/*.html")
	router.Use(middleware.LoadCurrentUser(cfg))

	router.GET("/", controllers.Home)
	router.GET("/registro/", controllers.ShowRegister)
	router.POST("/registro/", controllers.Register)
	router.GET("/login/", controllers.ShowLogin)
	router.POST("/login/", controllers.Login)
	router.GET("/logout/", controllers.Logout)
	router.GET("/hospedaje/", controllers.Lodging)
	router.GET("/actividad/", controllers.Activity)
	router.GET("/gastronomia/", controllers.Gastronomy)
	router.GET("/carrito/", controllers.Cart)

	protected := router.Group("/", middleware.RequireAuth())
	{
		protected.GET("/inicioregistrado/", controllers.RegisteredHome)
		protected.GET("/perfil/", controllers.ShowProfile)
		protected.POST("/perfil/", controllers.UpdateProfile)
		protected.GET("/listar_servicios_anfitrion", controllers.HostServices)
		protected.GET("/listar_reservas_anfitrion", controllers.HostReservations)
		protected.GET("/servicios/nuevo", controllers.ShowNewService)
		protected.POST("/servicios/nuevo", controllers.CreateService)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reservation web application is running",
	})
}
