package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/camila-moreno/turismo-reservas/middleware"
)

// render wraps c.HTML so every page gets the current user and any pending
// flash notice in its template context
func render(c *gin.Context, status int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		if user, ok := middleware.CurrentUser(c); ok {
			data["User"] = user
		}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.TakeFlash(c)
	}
	c.HTML(status, template, data)
}
