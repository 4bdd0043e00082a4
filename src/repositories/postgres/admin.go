package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// AdminRepository is the PostgreSQL implementation of repositories.AdminRepository
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new PostgreSQL admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

const adminColumns = `id, username, email, password_hash, full_name, is_active, created_at, updated_at, last_login_at`

func scanAdmin(row pgx.Row) (*models.AdminUser, error) {
	admin := &models.AdminUser{}
	err := row.Scan(
		&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash,
		&admin.FullName, &admin.IsActive, &admin.CreatedAt, &admin.UpdatedAt, &admin.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Create inserts a new admin user. Unique violations on the username or
// email constraints are mapped to the repository duplicate errors, so the
// database remains the authority even when the pre-check raced.
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, username, email, password_hash, full_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + adminColumns

	created, err := scanAdmin(r.pool.QueryRow(ctx, query,
		admin.ID, admin.Username, admin.Email, admin.PasswordHash,
		admin.FullName, admin.IsActive, admin.CreatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return repositories.ErrDuplicateEmail
			}
			return repositories.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert admin user: %w", err)
	}

	*admin = *created
	return nil
}

// GetActiveByUsername returns the active admin with the exact username.
// The match is case-sensitive and inactive accounts are never returned.
func (r *AdminRepository) GetActiveByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE username = $1 AND is_active = true`

	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query admin by username: %w", err)
	}
	return admin, nil
}

// GetByID returns the admin with the given id regardless of status
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`

	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query admin by id: %w", err)
	}
	return admin, nil
}

// FindByUsernameOrEmail returns any rows matching either value, for the
// pre-insert uniqueness check
func (r *AdminRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE username = $1 OR email = $2 LIMIT 2`

	rows, err := r.pool.Query(ctx, query, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins by username or email: %w", err)
	}
	defer rows.Close()

	return collectAdmins(rows)
}

// List returns all admin users ordered by created_at descending
func (r *AdminRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin users: %w", err)
	}
	defer rows.Close()

	return collectAdmins(rows)
}

// Count returns the total number of admin users
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admin users: %w", err)
	}
	return count, nil
}

// UpdateStatus sets is_active for the given admin
func (r *AdminRepository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `UPDATE admin_users SET is_active = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, isActive, id)
	if err != nil {
		return fmt.Errorf("failed to update admin status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// UpdateLastLogin stamps last_login_at for the given admin
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE admin_users SET last_login_at = $1 WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, at, id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// Delete hard-deletes the admin row
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func collectAdmins(rows pgx.Rows) ([]*models.AdminUser, error) {
	admins := []*models.AdminUser{}
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin row: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read admin rows: %w", err)
	}
	return admins, nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
