package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/repositories"
	"github.com/digitalfiroj/studio-site-server/src/repositories/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LeadService handles quiz lead and contact message intake and follow-up
type LeadService struct {
	repo repositories.LeadRepository
}

// NewLeadService creates a new lead service backed by PostgreSQL
func NewLeadService(pool *pgxpool.Pool) *LeadService {
	return NewLeadServiceWithRepo(postgres.NewLeadRepository(pool))
}

// NewLeadServiceWithRepo creates a new lead service with an explicit repository (for testing)
func NewLeadServiceWithRepo(repo repositories.LeadRepository) *LeadService {
	return &LeadService{repo: repo}
}

// QuizLeadParams holds the input for a quiz submission
type QuizLeadParams struct {
	Name        string
	Email       string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	Features    string
}

// CreateQuizLead validates and persists a quiz submission with status "new"
func (ls *LeadService) CreateQuizLead(ctx context.Context, params QuizLeadParams) (*models.QuizLead, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	company := strings.TrimSpace(params.Company)
	projectType := strings.TrimSpace(params.ProjectType)
	budget := strings.TrimSpace(params.Budget)
	timeline := strings.TrimSpace(params.Timeline)
	features := strings.TrimSpace(params.Features)

	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if projectType == "" || budget == "" || timeline == "" || features == "" {
		return nil, fmt.Errorf("%w: all quiz answers are required", ErrValidation)
	}

	lead := &models.QuizLead{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		ProjectType: projectType,
		Budget:      budget,
		Timeline:    timeline,
		Features:    features,
		Status:      string(models.LeadStatusNew),
		CreatedAt:   time.Now(),
	}
	if company != "" {
		lead.Company = &company
	}

	if err := ls.repo.CreateQuizLead(ctx, lead); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return lead, nil
}

// ContactMessageParams holds the input for a contact form submission
type ContactMessageParams struct {
	FirstName   string
	LastName    string
	Email       string
	Company     string
	ProjectType string
	Message     string
}

// CreateContactMessage validates and persists a contact form submission
func (ls *LeadService) CreateContactMessage(ctx context.Context, params ContactMessageParams) (*models.ContactMessage, error) {
	firstName := strings.TrimSpace(params.FirstName)
	lastName := strings.TrimSpace(params.LastName)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	message := strings.TrimSpace(params.Message)
	company := strings.TrimSpace(params.Company)
	projectType := strings.TrimSpace(params.ProjectType)

	if firstName == "" || lastName == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", ErrValidation)
	}

	msg := &models.ContactMessage{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Message:   message,
		Status:    string(models.LeadStatusNew),
		CreatedAt: time.Now(),
	}
	if company != "" {
		msg.Company = &company
	}
	if projectType != "" {
		msg.ProjectType = &projectType
	}

	if err := ls.repo.CreateContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return msg, nil
}

// GetQuizLeads returns all quiz leads, newest first
func (ls *LeadService) GetQuizLeads(ctx context.Context) ([]*models.QuizLead, error) {
	leads, err := ls.repo.ListQuizLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return leads, nil
}

// GetContactMessages returns all contact messages, newest first
func (ls *LeadService) GetContactMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	msgs, err := ls.repo.ListContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return msgs, nil
}

// UpdateQuizLeadStatus sets the follow-up status of a quiz lead
func (ls *LeadService) UpdateQuizLeadStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.ValidLeadStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return ls.translate(ls.repo.UpdateQuizLeadStatus(ctx, id, status))
}

// UpdateContactMessageStatus sets the follow-up status of a contact message
func (ls *LeadService) UpdateContactMessageStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.ValidLeadStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return ls.translate(ls.repo.UpdateContactMessageStatus(ctx, id, status))
}

// DeleteQuizLead hard-deletes a quiz lead
func (ls *LeadService) DeleteQuizLead(ctx context.Context, id uuid.UUID) error {
	return ls.translate(ls.repo.DeleteQuizLead(ctx, id))
}

// DeleteContactMessage hard-deletes a contact message
func (ls *LeadService) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	return ls.translate(ls.repo.DeleteContactMessage(ctx, id))
}

func (ls *LeadService) translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrLeadNotFound
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
