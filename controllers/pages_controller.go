package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camila-moreno/turismo-reservas/config"
	"github.com/camila-moreno/turismo-reservas/middleware"
	"github.com/camila-moreno/turismo-reservas/services"
)

// Home handles GET / - public landing page
func Home(c *gin.Context) {
	render(c, http.StatusOK, "inicio.html", nil)
}

// Lodging handles GET /hospedaje/ - lodging category page
func Lodging(c *gin.Context) {
	render(c, http.StatusOK, "hospedaje.html", nil)
}

// Activity handles GET /actividad/ - activity category page
func Activity(c *gin.Context) {
	render(c, http.StatusOK, "actividad.html", nil)
}

// Gastronomy handles GET /gastronomia/ - gastronomy category page
func Gastronomy(c *gin.Context) {
	render(c, http.StatusOK, "gastronomia.html", nil)
}

// Cart handles GET /carrito/ - shows the visitor's active cart when a session
// exists; otherwise the page renders without one
func Cart(c *gin.Context) {
	data := gin.H{}
	if user, ok := middleware.CurrentUser(c); ok {
		cart, err := services.ActiveCart(config.GetDB(), user)
		if err != nil {
			log.Printf("failed to load active cart for user %d: %v", user.ID, err)
		} else if cart != nil {
			data["Cart"] = cart
		}
	}
	render(c, http.StatusOK, "carrito.html", data)
}

// RegisteredHome handles GET /inicioregistrado/ - landing page for
// authenticated users
func RegisteredHome(c *gin.Context) {
	render(c, http.StatusOK, "inicioregistrado.html", nil)
}
