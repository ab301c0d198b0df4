package middleware

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

// Flash is a one-shot notice carried across a redirect
type Flash struct {
	Level   string // "success", "error" or "info"
	Message string
}

// SetFlash stores a one-shot notice for the next rendered page
func SetFlash(c *gin.Context, level, message string) {
	value := url.QueryEscape(level + "|" + message)
	c.SetCookie(flashCookieName, value, 60, "/", "", false, true)
}

// TakeFlash reads and clears the pending notice, if any
func TakeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(decoded, "|")
	if !found {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
