package handlers

import (
	"errors"
	"net/http"

	"github.com/digitalfiroj/studio-site-server/src/middleware"
	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin login, logout and session revalidation
type AuthHandler struct {
	admins   *services.AdminService
	sessions *services.SessionService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(admins *services.AdminService, sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{
		admins:   admins,
		sessions: sessions,
	}
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents the response for a live session
type SessionResponse struct {
	Token string            `json:"token"`
	User  *models.AdminUser `json:"user"`
}

// HandleLogin authenticates an admin and issues a session token
func (ah *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	admin, err := ah.admins.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrStorage) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "authentication temporarily unavailable",
			})
			return
		}
		// Wrong username and wrong password produce the same response
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid username or password",
		})
		return
	}

	token, err := ah.sessions.Issue(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create session",
		})
		return
	}

	ah.setSessionCookie(c, token)
	c.JSON(http.StatusOK, SessionResponse{
		Token: token,
		User:  admin,
	})
}

// HandleLogout clears the session cookie unconditionally
func (ah *AuthHandler) HandleLogout(c *gin.Context) {
	ah.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"status": "logged out",
	})
}

// HandleSession revalidates a persisted session on application load.
// The account is re-read from the store: a deleted or deactivated admin
// fails revalidation even with a well-signed token. On success the
// cookie is refreshed with a newly issued token.
func (ah *AuthHandler) HandleSession(c *gin.Context) {
	token := middleware.SessionToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"authenticated": false,
		})
		return
	}

	admin, fresh, err := ah.sessions.Revalidate(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, services.ErrStorage) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "session check temporarily unavailable",
			})
			return
		}
		ah.clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{
			"authenticated": false,
		})
		return
	}

	ah.setSessionCookie(c, fresh)
	c.JSON(http.StatusOK, SessionResponse{
		Token: fresh,
		User:  admin,
	})
}

func (ah *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(ah.sessions.TTL().Seconds()),
		"/",
		"",
		true, // Secure
		true, // HttpOnly
	)
}

func (ah *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		middleware.SessionCookieName,
		"",
		-1,
		"/",
		"",
		true, // Secure
		true, // HttpOnly
	)
}
