package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionService issues and validates admin session tokens.
//
// The token is the only thing the client persists (the admin_session
// cookie); the password is never stored or replayed. Revalidating a
// session means checking the token signature and re-reading the account,
// not re-running password authentication.
type SessionService struct {
	admins *AdminService
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(admins *AdminService, secret string, ttlHours int) *SessionService {
	return &SessionService{
		admins: admins,
		secret: []byte(secret),
		ttl:    time.Duration(ttlHours) * time.Hour,
	}
}

// SessionClaims are the JWT claims carried by an admin session token
type SessionClaims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TTL returns the configured session lifetime
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed session token for an authenticated admin
func (s *SessionService) Issue(admin *models.AdminUser) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		AdminID:  admin.ID.String(),
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "studio-site-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks the token signature and expiry and returns its claims
func (s *SessionService) Validate(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionInvalid
	}
	return claims, nil
}

// Revalidate confirms that the account behind a token still exists and is
// active, and issues a fresh token for the next page load. It fails with
// ErrSessionInvalid for a bad token and ErrUserNotFound when the account
// was deleted or deactivated since the token was issued.
func (s *SessionService) Revalidate(ctx context.Context, tokenString string) (*models.AdminUser, string, error) {
	claims, err := s.Validate(tokenString)
	if err != nil {
		return nil, "", err
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, "", ErrSessionInvalid
	}

	admin, err := s.admins.GetUserByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if !admin.IsActive {
		return nil, "", ErrUserNotFound
	}

	fresh, err := s.Issue(admin)
	if err != nil {
		return nil, "", err
	}
	return admin, fresh, nil
}
