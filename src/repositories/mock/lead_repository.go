package mock

import (
	"context"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/repositories"
	"github.com/google/uuid"
)

// LeadRepository is a mock implementation of repositories.LeadRepository
type LeadRepository struct {
	CreateQuizLeadFunc             func(ctx context.Context, lead *models.QuizLead) error
	CreateContactMessageFunc       func(ctx context.Context, msg *models.ContactMessage) error
	ListQuizLeadsFunc              func(ctx context.Context) ([]*models.QuizLead, error)
	ListContactMessagesFunc        func(ctx context.Context) ([]*models.ContactMessage, error)
	UpdateQuizLeadStatusFunc       func(ctx context.Context, id uuid.UUID, status string) error
	UpdateContactMessageStatusFunc func(ctx context.Context, id uuid.UUID, status string) error
	DeleteQuizLeadFunc             func(ctx context.Context, id uuid.UUID) error
	DeleteContactMessageFunc       func(ctx context.Context, id uuid.UUID) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewLeadRepository creates a new mock lead repository
func NewLeadRepository() *LeadRepository {
	return &LeadRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *LeadRepository) CreateQuizLead(ctx context.Context, lead *models.QuizLead) error {
	m.Calls["CreateQuizLead"] = append(m.Calls["CreateQuizLead"], lead)
	if m.CreateQuizLeadFunc != nil {
		return m.CreateQuizLeadFunc(ctx, lead)
	}
	return nil
}

func (m *LeadRepository) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	m.Calls["CreateContactMessage"] = append(m.Calls["CreateContactMessage"], msg)
	if m.CreateContactMessageFunc != nil {
		return m.CreateContactMessageFunc(ctx, msg)
	}
	return nil
}

func (m *LeadRepository) ListQuizLeads(ctx context.Context) ([]*models.QuizLead, error) {
	m.Calls["ListQuizLeads"] = append(m.Calls["ListQuizLeads"], nil)
	if m.ListQuizLeadsFunc != nil {
		return m.ListQuizLeadsFunc(ctx)
	}
	return []*models.QuizLead{}, nil
}

func (m *LeadRepository) ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	m.Calls["ListContactMessages"] = append(m.Calls["ListContactMessages"], nil)
	if m.ListContactMessagesFunc != nil {
		return m.ListContactMessagesFunc(ctx)
	}
	return []*models.ContactMessage{}, nil
}

func (m *LeadRepository) UpdateQuizLeadStatus(ctx context.Context, id uuid.UUID, status string) error {
	m.Calls["UpdateQuizLeadStatus"] = append(m.Calls["UpdateQuizLeadStatus"], []interface{}{id, status})
	if m.UpdateQuizLeadStatusFunc != nil {
		return m.UpdateQuizLeadStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *LeadRepository) UpdateContactMessageStatus(ctx context.Context, id uuid.UUID, status string) error {
	m.Calls["UpdateContactMessageStatus"] = append(m.Calls["UpdateContactMessageStatus"], []interface{}{id, status})
	if m.UpdateContactMessageStatusFunc != nil {
		return m.UpdateContactMessageStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *LeadRepository) DeleteQuizLead(ctx context.Context, id uuid.UUID) error {
	m.Calls["DeleteQuizLead"] = append(m.Calls["DeleteQuizLead"], id)
	if m.DeleteQuizLeadFunc != nil {
		return m.DeleteQuizLeadFunc(ctx, id)
	}
	return nil
}

func (m *LeadRepository) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	m.Calls["DeleteContactMessage"] = append(m.Calls["DeleteContactMessage"], id)
	if m.DeleteContactMessageFunc != nil {
		return m.DeleteContactMessageFunc(ctx, id)
	}
	return nil
}

// Ensure LeadRepository implements the interface
var _ repositories.LeadRepository = (*LeadRepository)(nil)
