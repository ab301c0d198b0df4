package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camila-moreno/turismo-reservas/config"
	"github.com/camila-moreno/turismo-reservas/forms"
	"github.com/camila-moreno/turismo-reservas/middleware"
	"github.com/camila-moreno/turismo-reservas/models"
	"github.com/camila-moreno/turismo-reservas/services"
)

// HostServices handles GET /listar_servicios_anfitrion - the host's own
// catalog listings
func HostServices(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	listings, err := services.HostServices(config.GetDB(), user)
	if err != nil {
		log.Printf("failed to load services for host %d: %v", user.ID, err)
	}

	render(c, http.StatusOK, "listar_servicios_anfitrion.html", gin.H{
		"Services": listings,
	})
}

// HostReservations handles GET /listar_reservas_anfitrion - reservations that
// include the host's services
func HostReservations(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	reservations, err := services.HostReservations(config.GetDB(), user)
	if err != nil {
		log.Printf("failed to load reservations for host %d: %v", user.ID, err)
	}

	render(c, http.StatusOK, "listar_reservas_anfitrion.html", gin.H{
		"Reservations": reservations,
	})
}

// ShowNewService handles GET /servicios/nuevo - the listing creation form
func ShowNewService(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	if !canPublish(user) {
		middleware.SetFlash(c, "error", "Only hosts can publish services.")
		c.Redirect(http.StatusFound, "/perfil/")
		return
	}

	render(c, http.StatusOK, "servicio_nuevo.html", gin.H{
		"Form":         &forms.ServiceForm{},
		"Errors":       forms.Errors{},
		"ServiceTypes": serviceTypes(),
	})
}

// CreateService handles POST /servicios/nuevo - creates a listing owned by
// the host, with an optional photo stored through the image service
func CreateService(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	if !canPublish(user) {
		middleware.SetFlash(c, "error", "Only hosts can publish services.")
		c.Redirect(http.StatusFound, "/perfil/")
		return
	}

	var form forms.ServiceForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("warning: could not bind service form: %v", err)
	}

	db := config.GetDB()
	errs := form.Validate(db)

	var imageS3Key *string
	fileHeader, err := c.FormFile("image")
	if err == nil && fileHeader != nil {
		imageService := services.GetImageService()
		if imageService == nil {
			errs.Add("image", "Photo uploads are not available right now.")
		} else if key, uploadErr := imageService.UploadImage(fileHeader); uploadErr != nil {
			errs.Add("image", uploadErr.Error())
		} else {
			imageS3Key = &key
		}
	}

	if len(errs) > 0 {
		render(c, http.StatusOK, "servicio_nuevo.html", gin.H{
			"Form":          &form,
			"Errors":        errs,
			"FormSubmitted": true,
			"ServiceTypes":  serviceTypes(),
		})
		return
	}

	if _, err := services.CreateService(db, user, form.ToInput(imageS3Key)); err != nil {
		log.Printf("service creation failed for host %d: %v", user.ID, err)
		middleware.SetFlash(c, "error", "The service could not be published. Please try again.")
		c.Redirect(http.StatusFound, "/servicios/nuevo")
		return
	}

	middleware.SetFlash(c, "success", "Your service has been published.")
	c.Redirect(http.StatusFound, "/listar_servicios_anfitrion")
}

func canPublish(user *models.User) bool {
	switch user.Role() {
	case models.RoleHost, models.RoleAdministrator:
		return true
	default:
		return false
	}
}

func serviceTypes() []models.ServiceType {
	var types []models.ServiceType
	if err := config.GetDB().Order("name").Find(&types).Error; err != nil {
		log.Printf("failed to load service types: %v", err)
	}
	return types
}
