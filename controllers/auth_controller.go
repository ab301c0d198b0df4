package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camila-moreno/turismo-reservas/config"
	"github.com/camila-moreno/turismo-reservas/forms"
	"github.com/camila-moreno/turismo-reservas/middleware"
	"github.com/camila-moreno/turismo-reservas/services"
)

// ShowRegister handles GET /registro/ - shows the registration form
func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "registro.html", gin.H{
		"Form":   &forms.RegisterForm{},
		"Errors": forms.Errors{},
	})
}

// Register handles POST /registro/ - creates an account and redirects to login
func Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("warning: could not bind registration form: %v", err)
	}

	db := config.GetDB()
	errs := form.Validate(db)
	if len(errs) > 0 {
		render(c, http.StatusOK, "registro.html", gin.H{
			"Form":          &form,
			"Errors":        errs,
			"FormSubmitted": true,
		})
		return
	}

	if _, err := services.Register(db, form.ToInput()); err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			errs.Add("email", "A user with this email already exists.")
			render(c, http.StatusOK, "registro.html", gin.H{
				"Form":          &form,
				"Errors":        errs,
				"FormSubmitted": true,
			})
			return
		}
		log.Printf("registration failed: %v", err)
		middleware.SetFlash(c, "error", "Registration could not be completed. Please try again.")
		c.Redirect(http.StatusFound, "/registro/")
		return
	}

	middleware.SetFlash(c, "success", "Registration successful! You can now log in.")
	c.Redirect(http.StatusFound, "/login/")
}

// ShowLogin handles GET /login/ - shows the login form
func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Form":   &forms.LoginForm{},
		"Errors": forms.Errors{},
	})
}

// Login handles POST /login/ - authenticates and establishes a session
func Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("warning: could not bind login form: %v", err)
	}

	errs := form.Validate()
	if len(errs) == 0 {
		user, err := services.Authenticate(config.GetDB(), form.Email, form.Password)
		switch {
		case err == nil:
			token, tokenErr := middleware.NewSessionToken(user.ID, config.GetConfig().SessionSecret)
			if tokenErr != nil {
				log.Printf("failed to issue session token: %v", tokenErr)
				errs.Add("credentials", "An unexpected error occurred while logging in.")
				break
			}
			middleware.SetSessionCookie(c, token)
			middleware.SetFlash(c, "success", fmt.Sprintf("Welcome back, %s!", user.FullName()))
			c.Redirect(http.StatusFound, "/inicioregistrado/")
			return
		case errors.Is(err, services.ErrInvalidCredentials):
			errs.Add("credentials", services.ErrInvalidCredentials.Error())
		default:
			log.Printf("login failed: %v", err)
			errs.Add("credentials", "An unexpected error occurred while logging in.")
		}
	}

	render(c, http.StatusOK, "login.html", gin.H{
		"Form":          &form,
		"Errors":        errs,
		"FormSubmitted": true,
	})
}

// Logout handles GET /logout/ - clears the session and redirects home
func Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	middleware.SetFlash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}
