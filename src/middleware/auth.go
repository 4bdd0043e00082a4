package middleware

import (
	"net/http"
	"strings"

	"github.com/digitalfiroj/studio-site-server/src/services"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the single client-side slot holding the admin session
const SessionCookieName = "admin_session"

// Context keys set by AdminAuth for downstream handlers
const (
	ContextAdminID  = "admin_id"
	ContextUsername = "username"
)

// SessionToken extracts the session token from the cookie or, as a
// fallback, a bearer Authorization header. Returns "" when absent.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return ""
}

// AdminAuth checks for a valid session token and stores the admin
// identity in the request context. The session service is injected
// rather than read from package state, so tests can supply their own.
func AdminAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			c.Abort()
			return
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
