package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PortfolioService handles the portfolio CRUD surface of the admin panel
type PortfolioService struct {
	pool *pgxpool.Pool
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(pool *pgxpool.Pool) *PortfolioService {
	return &PortfolioService{pool: pool}
}

const portfolioColumns = `id, title, description, image_url, project_url, github_url, technologies, category, featured, display_order, enabled, created_at, updated_at`

// PortfolioParams holds the input for creating or updating a portfolio item
type PortfolioParams struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	ProjectURL   string   `json:"project_url"`
	GithubURL    string   `json:"github_url"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
	DisplayOrder int      `json:"display_order"`
	Enabled      bool     `json:"enabled"`
}

func (p *PortfolioParams) validate() error {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: title and description are required", ErrValidation)
	}
	return nil
}

// CreateItem persists a new portfolio item
func (ps *PortfolioService) CreateItem(ctx context.Context, params PortfolioParams) (*models.PortfolioItem, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(params.Title),
		Description:  strings.TrimSpace(params.Description),
		ImageURL:     params.ImageURL,
		Technologies: params.Technologies,
		Category:     params.Category,
		Featured:     params.Featured,
		DisplayOrder: params.DisplayOrder,
		Enabled:      params.Enabled,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if params.ProjectURL != "" {
		item.ProjectURL = &params.ProjectURL
	}
	if params.GithubURL != "" {
		item.GithubURL = &params.GithubURL
	}
	if item.Technologies == nil {
		item.Technologies = []string{}
	}

	query := `
		INSERT INTO portfolios (id, title, description, image_url, project_url, github_url, technologies, category, featured, display_order, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
	`

	_, err := ps.pool.Exec(ctx, query,
		item.ID, item.Title, item.Description, item.ImageURL, item.ProjectURL, item.GithubURL,
		item.Technologies, item.Category, item.Featured, item.DisplayOrder, item.Enabled, item.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert portfolio item: %v", ErrStorage, err)
	}
	return item, nil
}

// UpdateItem replaces the editable fields of a portfolio item
func (ps *PortfolioService) UpdateItem(ctx context.Context, id uuid.UUID, params PortfolioParams) error {
	if err := params.validate(); err != nil {
		return err
	}

	var projectURL, githubURL *string
	if params.ProjectURL != "" {
		projectURL = &params.ProjectURL
	}
	if params.GithubURL != "" {
		githubURL = &params.GithubURL
	}
	technologies := params.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	query := `
		UPDATE portfolios
		SET title = $1, description = $2, image_url = $3, project_url = $4, github_url = $5,
		    technologies = $6, category = $7, featured = $8, display_order = $9, enabled = $10,
		    updated_at = NOW()
		WHERE id = $11
	`

	result, err := ps.pool.Exec(ctx, query,
		strings.TrimSpace(params.Title), strings.TrimSpace(params.Description), params.ImageURL,
		projectURL, githubURL, technologies, params.Category, params.Featured,
		params.DisplayOrder, params.Enabled, id,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update portfolio item: %v", ErrStorage, err)
	}
	if result.RowsAffected() == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}

// SetEnabled toggles whether an item appears on the public portfolio page
func (ps *PortfolioService) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	result, err := ps.pool.Exec(ctx, `UPDATE portfolios SET enabled = $1, updated_at = NOW() WHERE id = $2`, enabled, id)
	if err != nil {
		return fmt.Errorf("%w: failed to toggle portfolio item: %v", ErrStorage, err)
	}
	if result.RowsAffected() == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}

// DeleteItem hard-deletes a portfolio item
func (ps *PortfolioService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result, err := ps.pool.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete portfolio item: %v", ErrStorage, err)
	}
	if result.RowsAffected() == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}

// GetAllItems returns every portfolio item ordered by display_order (admin view)
func (ps *PortfolioService) GetAllItems(ctx context.Context) ([]*models.PortfolioItem, error) {
	return ps.listItems(ctx, `SELECT `+portfolioColumns+` FROM portfolios ORDER BY display_order ASC`)
}

// GetEnabledItems returns only enabled items ordered by display_order (public view)
func (ps *PortfolioService) GetEnabledItems(ctx context.Context) ([]*models.PortfolioItem, error) {
	return ps.listItems(ctx, `SELECT `+portfolioColumns+` FROM portfolios WHERE enabled = true ORDER BY display_order ASC`)
}

// CountItems returns the total number of portfolio items
func (ps *PortfolioService) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := ps.pool.QueryRow(ctx, `SELECT COUNT(*) FROM portfolios`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to count portfolio items: %v", ErrStorage, err)
	}
	return count, nil
}

func (ps *PortfolioService) listItems(ctx context.Context, query string) ([]*models.PortfolioItem, error) {
	rows, err := ps.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list portfolio items: %v", ErrStorage, err)
	}
	defer rows.Close()

	items := []*models.PortfolioItem{}
	for rows.Next() {
		item, err := scanPortfolioItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read portfolio rows: %v", ErrStorage, err)
	}
	return items, nil
}

func scanPortfolioItem(row pgx.Row) (*models.PortfolioItem, error) {
	item := &models.PortfolioItem{}
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.ImageURL, &item.ProjectURL, &item.GithubURL,
		&item.Technologies, &item.Category, &item.Featured, &item.DisplayOrder, &item.Enabled,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("failed to scan portfolio item: %w", err)
	}
	return item, nil
}
