package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	appConfig "github.com/camila-moreno/turismo-reservas/config"
	"github.com/camila-moreno/turismo-reservas/models"
)

const (
	// SessionCookieName is the cookie holding the signed session token
	SessionCookieName = "session"
	// SessionTTL is how long a session token stays valid
	SessionTTL = 24 * time.Hour

	currentUserKey = "current_user"
)

// NewSessionToken issues a signed session token for the user
func NewSessionToken(userID uint, secret string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseSessionToken validates a session token and returns the user ID it names
func parseSessionToken(token, secret string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !parsed.Valid {
		return 0, fmt.Errorf("invalid session token")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid session subject: %w", err)
	}
	return uint(id), nil
}

// LoadCurrentUser resolves the session cookie to a user and stores it in the
// request context. It never rejects the request; pages that require a session
// add RequireAuth on top.
func LoadCurrentUser(cfg *appConfig.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := parseSessionToken(token, cfg.SessionSecret)
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		if err := appConfig.GetDB().Preload("Type").First(&user, userID).Error; err != nil {
			c.Next()
			return
		}
		if !user.IsActive {
			c.Next()
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

// RequireAuth redirects unauthenticated requests to the login page
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by LoadCurrentUser
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}

// SetSessionCookie establishes the session cookie on the response
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookieName, token, int(SessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
