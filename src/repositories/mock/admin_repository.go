package mock

import (
	"context"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/repositories"
	"github.com/google/uuid"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc                func(ctx context.Context, admin *models.AdminUser) error
	GetActiveByUsernameFunc   func(ctx context.Context, username string) (*models.AdminUser, error)
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	FindByUsernameOrEmailFunc func(ctx context.Context, username, email string) ([]*models.AdminUser, error)
	ListFunc                  func(ctx context.Context) ([]*models.AdminUser, error)
	CountFunc                 func(ctx context.Context) (int, error)
	UpdateStatusFunc          func(ctx context.Context, id uuid.UUID, isActive bool) error
	UpdateLastLoginFunc       func(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	m.Calls["Create"] = append(m.Calls["Create"], admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

func (m *AdminRepository) GetActiveByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	m.Calls["GetActiveByUsername"] = append(m.Calls["GetActiveByUsername"], username)
	if m.GetActiveByUsernameFunc != nil {
		return m.GetActiveByUsernameFunc(ctx, username)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]*models.AdminUser, error) {
	m.Calls["FindByUsernameOrEmail"] = append(m.Calls["FindByUsernameOrEmail"], []string{username, email})
	if m.FindByUsernameOrEmailFunc != nil {
		return m.FindByUsernameOrEmailFunc(ctx, username, email)
	}
	return nil, nil
}

func (m *AdminRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.AdminUser{}, nil
}

func (m *AdminRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *AdminRepository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	m.Calls["UpdateStatus"] = append(m.Calls["UpdateStatus"], []interface{}{id, isActive})
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, isActive)
	}
	return nil
}

func (m *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	m.Calls["UpdateLastLogin"] = append(m.Calls["UpdateLastLogin"], id)
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id, at)
	}
	return nil
}

func (m *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
