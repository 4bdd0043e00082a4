package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is tuned for roughly 100ms per verification.
// Raising it slows every login; lowering it weakens brute-force resistance.
const bcryptCost = 10

// HashPassword hashes a password with bcrypt. The salt is generated
// per call, so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a password against a bcrypt hash. It returns
// false for a wrong password or a malformed hash, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
