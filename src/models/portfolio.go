package models

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioItem represents a project shown on the portfolio page
type PortfolioItem struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	ProjectURL   *string   `json:"project_url"`
	GithubURL    *string   `json:"github_url"`
	Technologies []string  `json:"technologies"`
	Category     string    `json:"category"`
	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"display_order"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
