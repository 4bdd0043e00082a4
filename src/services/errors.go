package services

import "errors"

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrValidation indicates the input was empty or malformed
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateUsername indicates the username is already taken
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateEmail indicates the email is already taken
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrUserNotFound indicates the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates authentication failed
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLeadNotFound indicates the quiz lead or contact message does not exist
	ErrLeadNotFound = errors.New("lead not found")

	// ErrPortfolioNotFound indicates the portfolio item does not exist
	ErrPortfolioNotFound = errors.New("portfolio item not found")

	// ErrSessionInvalid indicates the session token is missing, malformed or expired
	ErrSessionInvalid = errors.New("invalid session token")

	// ErrStorage indicates a transient backend failure; callers may retry the action
	ErrStorage = errors.New("storage error")
)
