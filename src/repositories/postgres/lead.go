package postgres

import (
	"context"
	"fmt"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LeadRepository is the PostgreSQL implementation of repositories.LeadRepository
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository creates a new PostgreSQL lead repository
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

// CreateQuizLead inserts a quiz lead row
func (r *LeadRepository) CreateQuizLead(ctx context.Context, lead *models.QuizLead) error {
	query := `
		INSERT INTO quiz_leads (id, name, email, company, project_type, budget, timeline, features, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Company,
		lead.ProjectType, lead.Budget, lead.Timeline, lead.Features,
		lead.Status, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quiz lead: %w", err)
	}
	return nil
}

// CreateContactMessage inserts a contact message row
func (r *LeadRepository) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, first_name, last_name, email, company, project_type, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.FirstName, msg.LastName, msg.Email, msg.Company,
		msg.ProjectType, msg.Message, msg.Status, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// ListQuizLeads returns all quiz leads, newest first
func (r *LeadRepository) ListQuizLeads(ctx context.Context) ([]*models.QuizLead, error) {
	query := `
		SELECT id, name, email, company, project_type, budget, timeline, features, status, created_at
		FROM quiz_leads
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz leads: %w", err)
	}
	defer rows.Close()

	leads := []*models.QuizLead{}
	for rows.Next() {
		lead := &models.QuizLead{}
		if err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Email, &lead.Company,
			&lead.ProjectType, &lead.Budget, &lead.Timeline, &lead.Features,
			&lead.Status, &lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quiz lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quiz lead rows: %w", err)
	}
	return leads, nil
}

// ListContactMessages returns all contact messages, newest first
func (r *LeadRepository) ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, first_name, last_name, email, company, project_type, message, status, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	msgs := []*models.ContactMessage{}
	for rows.Next() {
		msg := &models.ContactMessage{}
		if err := rows.Scan(
			&msg.ID, &msg.FirstName, &msg.LastName, &msg.Email, &msg.Company,
			&msg.ProjectType, &msg.Message, &msg.Status, &msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact message rows: %w", err)
	}
	return msgs, nil
}

// UpdateQuizLeadStatus sets the status of a quiz lead
func (r *LeadRepository) UpdateQuizLeadStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.updateStatus(ctx, "quiz_leads", id, status)
}

// UpdateContactMessageStatus sets the status of a contact message
func (r *LeadRepository) UpdateContactMessageStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.updateStatus(ctx, "contact_messages", id, status)
}

func (r *LeadRepository) updateStatus(ctx context.Context, table string, id uuid.UUID, status string) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2`, table)

	result, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update %s status: %w", table, err)
	}
	if result.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteQuizLead hard-deletes a quiz lead row
func (r *LeadRepository) DeleteQuizLead(ctx context.Context, id uuid.UUID) error {
	return r.deleteRow(ctx, "quiz_leads", id)
}

// DeleteContactMessage hard-deletes a contact message row
func (r *LeadRepository) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	return r.deleteRow(ctx, "contact_messages", id)
}

func (r *LeadRepository) deleteRow(ctx context.Context, table string, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if result.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Ensure LeadRepository implements the interface
var _ repositories.LeadRepository = (*LeadRepository)(nil)
