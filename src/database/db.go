package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database holds the PostgreSQL connection pool
type Database struct {
	pool *pgxpool.Pool
}

// New creates a new database connection and bootstraps the schema
func New(ctx context.Context, databaseURL string) (*Database, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Configure connection pool
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &Database{pool: pool}

	if err := db.initializeSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool
func (db *Database) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GetPool returns the connection pool
func (db *Database) GetPool() *pgxpool.Pool {
	return db.pool
}

// initializeSchema reads and executes schema.sql
func (db *Database) initializeSchema(ctx context.Context) error {
	schemaPath := "schema.sql"

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		content, err = os.ReadFile(filepath.Join(".", schemaPath))
		if err != nil {
			return fmt.Errorf("failed to read schema.sql: %w", err)
		}
	}

	if _, err := db.pool.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := db.runMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger := logging.NewLogger("database")
	logger.Info().Msg("schema initialized")
	return nil
}

// runMigrations applies idempotent schema changes for existing deployments
func (db *Database) runMigrations(ctx context.Context) error {
	// Migration 1: status column on quiz_leads predates the status lifecycle
	_, err := db.pool.Exec(ctx, `
		ALTER TABLE quiz_leads
		ADD COLUMN IF NOT EXISTS status TEXT NOT NULL DEFAULT 'new';
	`)
	if err != nil {
		return fmt.Errorf("failed to add quiz_leads.status column: %w", err)
	}

	// Migration 2: error column on email_notifications for failure reasons
	_, err = db.pool.Exec(ctx, `
		ALTER TABLE email_notifications
		ADD COLUMN IF NOT EXISTS error TEXT;
	`)
	if err != nil {
		return fmt.Errorf("failed to add email_notifications.error column: %w", err)
	}

	return nil
}

// Health checks if the database is healthy
func (db *Database) Health(ctx context.Context) error {
	if db == nil || db.pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.pool.Ping(ctx)
}

// QueryRow executes a query and returns a single row
func (db *Database) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}
