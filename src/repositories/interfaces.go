package repositories

import (
	"context"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/google/uuid"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error

	// Lookup
	GetActiveByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]*models.AdminUser, error)

	// Listing ordered by created_at descending
	List(ctx context.Context) ([]*models.AdminUser, error)
	Count(ctx context.Context) (int, error)

	// Mutation
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LeadRepository defines the interface for quiz lead and contact message data access
type LeadRepository interface {
	CreateQuizLead(ctx context.Context, lead *models.QuizLead) error
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error

	ListQuizLeads(ctx context.Context) ([]*models.QuizLead, error)
	ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error)

	UpdateQuizLeadStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateContactMessageStatus(ctx context.Context, id uuid.UUID, status string) error

	DeleteQuizLead(ctx context.Context, id uuid.UUID) error
	DeleteContactMessage(ctx context.Context, id uuid.UUID) error
}
