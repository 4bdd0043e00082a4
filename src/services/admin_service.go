package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/logging"
	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/repositories"
	"github.com/digitalfiroj/studio-site-server/src/repositories/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// AdminService handles admin account lifecycle and credential checks
type AdminService struct {
	repo repositories.AdminRepository
	log  zerolog.Logger
}

// NewAdminService creates a new admin service backed by PostgreSQL
func NewAdminService(pool *pgxpool.Pool) *AdminService {
	return NewAdminServiceWithRepo(postgres.NewAdminRepository(pool))
}

// NewAdminServiceWithRepo creates a new admin service with an explicit repository (for testing)
func NewAdminServiceWithRepo(repo repositories.AdminRepository) *AdminService {
	return &AdminService{
		repo: repo,
		log:  logging.NewLogger("admin_service"),
	}
}

// Authenticate verifies a username/password pair against the active accounts.
// Callers must not expose which of ErrUserNotFound / ErrInvalidCredentials
// occurred; the login handler collapses both into one response.
func (as *AdminService) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error) {
	admin, err := as.repo.GetActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if admin.PasswordHash == "" || !VerifyPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// Best effort: a failed timestamp update must not fail the login
	now := time.Now()
	if err := as.repo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		as.log.Warn().Err(err).Str("username", admin.Username).Msg("failed to update last login timestamp")
	}
	admin.LastLoginAt = &now

	return admin, nil
}

// CreateUserParams holds the input for CreateUser
type CreateUserParams struct {
	Username string
	Email    string
	Password string
	FullName string
}

// CreateUser creates a new admin account with a hashed password.
// Username and email uniqueness is pre-checked in one query; the database
// unique constraints remain the authority under concurrent submissions.
func (as *AdminService) CreateUser(ctx context.Context, params CreateUserParams) (*models.AdminUser, error) {
	username := strings.TrimSpace(params.Username)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	password := strings.TrimSpace(params.Password)
	fullName := strings.TrimSpace(params.FullName)

	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	existing, err := as.repo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	for _, user := range existing {
		if user.Username == username {
			return nil, ErrDuplicateUsername
		}
	}
	for _, user := range existing {
		if user.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if fullName != "" {
		admin.FullName = &fullName
	}

	if err := as.repo.Create(ctx, admin); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateUsername):
			return nil, ErrDuplicateUsername
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	as.log.Info().Str("username", admin.Username).Msg("admin user created")
	return admin, nil
}

// GetAllUsers returns all admin accounts ordered by created_at descending.
// An empty list is a valid result.
func (as *AdminService) GetAllUsers(ctx context.Context) ([]*models.AdminUser, error) {
	users, err := as.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return users, nil
}

// GetUserByID returns the admin account with the given id
func (as *AdminService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	admin, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return admin, nil
}

// UpdateUserStatus toggles is_active for an account. Setting the same
// value twice is not an error.
func (as *AdminService) UpdateUserStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	if err := as.repo.UpdateStatus(ctx, id, isActive); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// DeleteUser hard-deletes an account. An already-issued session token for
// the deleted user keeps working until its next revalidation, which fails
// and forces logout.
func (as *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := as.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	as.log.Info().Str("user_id", id.String()).Msg("admin user deleted")
	return nil
}

// HasAdmins checks whether any admin accounts exist, for first-run seeding
func (as *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	count, err := as.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return count > 0, nil
}
