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

// ShowProfile handles GET /perfil/ - profile form plus the reservation listing
func ShowProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	form := forms.ProfileForm{
		Name:    user.Name,
		Surname: user.Surname,
	}
	if user.Phone != nil {
		form.Phone = *user.Phone
	}

	renderProfile(c, user, &form, forms.Errors{}, false)
}

// UpdateProfile handles POST /perfil/ - applies the profile update and
// redirects back on success (redirect-after-post)
func UpdateProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form forms.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("warning: could not bind profile form: %v", err)
	}

	errs := form.Validate()
	if len(errs) > 0 {
		renderProfile(c, user, &form, errs, true)
		return
	}

	if err := services.UpdateProfile(config.GetDB(), user, form.ToUpdate()); err != nil {
		log.Printf("profile update failed for user %d: %v", user.ID, err)
		errs.Add("form", "Your details could not be saved. Please try again.")
		renderProfile(c, user, &form, errs, true)
		return
	}

	middleware.SetFlash(c, "success", "Your details have been updated.")
	c.Redirect(http.StatusFound, "/perfil/")
}

func renderProfile(c *gin.Context, user *models.User, form *forms.ProfileForm, errs forms.Errors, submitted bool) {
	reservations, err := services.ProfileReservations(config.GetDB(), user)
	if err != nil {
		log.Printf("failed to load reservations for user %d: %v", user.ID, err)
	}

	render(c, http.StatusOK, "perfil.html", gin.H{
		"Form":          form,
		"Errors":        errs,
		"FormSubmitted": submitted,
		"Reservations":  reservations,
	})
}
