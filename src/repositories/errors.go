package repositories

import "errors"

// Storage-level sentinel errors. Services translate these into their
// own taxonomy so handlers never depend on this package directly.

var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("row not found")

	// ErrDuplicateUsername indicates the username unique constraint was violated
	ErrDuplicateUsername = errors.New("duplicate username")

	// ErrDuplicateEmail indicates the email unique constraint was violated
	ErrDuplicateEmail = errors.New("duplicate email")
)
