package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/repositories"
	"github.com/digitalfiroj/studio-site-server/src/repositories/mock"
	"github.com/google/uuid"
)

func activeAdmin(t *testing.T, username, password string) *models.AdminUser {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	return &models.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func TestAuthenticate_Success(t *testing.T) {
	repo := mock.NewAdminRepository()
	admin := activeAdmin(t, "firoj", "secret-password")
	repo.GetActiveByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		if username == "firoj" {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}

	as := NewAdminServiceWithRepo(repo)
	got, err := as.Authenticate(context.Background(), "firoj", "secret-password")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	if got.Username != "firoj" {
		t.Errorf("Expected username firoj, got %s", got.Username)
	}
	if got.LastLoginAt == nil {
		t.Error("Expected LastLoginAt to be set after login")
	}
	if len(repo.Calls["UpdateLastLogin"]) != 1 {
		t.Errorf("Expected 1 UpdateLastLogin call, got %d", len(repo.Calls["UpdateLastLogin"]))
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := mock.NewAdminRepository()
	admin := activeAdmin(t, "firoj", "secret-password")
	repo.GetActiveByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return admin, nil
	}

	as := NewAdminServiceWithRepo(repo)
	_, err := as.Authenticate(context.Background(), "firoj", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	if len(repo.Calls["UpdateLastLogin"]) != 0 {
		t.Error("Expected no UpdateLastLogin call on failed login")
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	repo := mock.NewAdminRepository()

	as := NewAdminServiceWithRepo(repo)
	_, err := as.Authenticate(context.Background(), "nobody", "whatever")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

// Inactive accounts are filtered by the repository query, so to the service
// an inactive user is indistinguishable from a missing one.
func TestAuthenticate_InactiveUser(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetActiveByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return nil, repositories.ErrNotFound
	}

	as := NewAdminServiceWithRepo(repo)
	_, err := as.Authenticate(context.Background(), "deactivated", "secret-password")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound for inactive user, got %v", err)
	}
}

func TestAuthenticate_LastLoginFailureIsNonFatal(t *testing.T) {
	repo := mock.NewAdminRepository()
	admin := activeAdmin(t, "firoj", "secret-password")
	repo.GetActiveByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return admin, nil
	}
	repo.UpdateLastLoginFunc = func(ctx context.Context, id uuid.UUID, at time.Time) error {
		return errors.New("connection reset")
	}

	as := NewAdminServiceWithRepo(repo)
	got, err := as.Authenticate(context.Background(), "firoj", "secret-password")
	if err != nil {
		t.Fatalf("Expected login to succeed despite timestamp failure, got %v", err)
	}
	if got == nil {
		t.Fatal("Expected admin user, got nil")
	}
}

func TestAuthenticate_StorageError(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetActiveByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return nil, errors.New("connection refused")
	}

	as := NewAdminServiceWithRepo(repo)
	_, err := as.Authenticate(context.Background(), "firoj", "secret-password")
	if !errors.Is(err, ErrStorage) {
		t.Errorf("Expected ErrStorage, got %v", err)
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo := mock.NewAdminRepository()

	as := NewAdminServiceWithRepo(repo)
	admin, err := as.CreateUser(context.Background(), CreateUserParams{
		Username: "  newadmin  ",
		Email:    "  NewAdmin@Example.COM ",
		Password: "strong-password",
		FullName: "New Admin",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if admin.Username != "newadmin" {
		t.Errorf("Expected trimmed username, got %q", admin.Username)
	}
	if admin.Email != "newadmin@example.com" {
		t.Errorf("Expected lowercased email, got %q", admin.Email)
	}
	if !admin.IsActive {
		t.Error("Expected new user to be active")
	}
	if admin.PasswordHash == "" || admin.PasswordHash == "strong-password" {
		t.Error("Expected password to be stored as a hash")
	}
	if admin.FullName == nil || *admin.FullName != "New Admin" {
		t.Error("Expected full name to be set")
	}
	if len(repo.Calls["Create"]) != 1 {
		t.Errorf("Expected 1 Create call, got %d", len(repo.Calls["Create"]))
	}
}

func TestCreateUser_CreateThenAuthenticate(t *testing.T) {
	// In-memory store shared across both operations
	var stored *models.AdminUser
	repo := mock.NewAdminRepository()
	repo.CreateFunc = func(ctx context.Context, admin *models.AdminUser) error {
		stored = admin
		return nil
	}
	repo.GetActiveByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		if stored != nil && stored.Username == username && stored.IsActive {
			return stored, nil
		}
		return nil, repositories.ErrNotFound
	}

	as := NewAdminServiceWithRepo(repo)
	if _, err := as.CreateUser(context.Background(), CreateUserParams{
		Username: "roundtrip",
		Email:    "roundtrip@example.com",
		Password: "the-password",
	}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	admin, err := as.Authenticate(context.Background(), "roundtrip", "the-password")
	if err != nil {
		t.Fatalf("Authenticate after CreateUser failed: %v", err)
	}
	if admin.Username != "roundtrip" {
		t.Errorf("Expected username roundtrip, got %s", admin.Username)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	as := NewAdminServiceWithRepo(mock.NewAdminRepository())

	cases := []CreateUserParams{
		{Username: "", Email: "a@b.com", Password: "pw"},
		{Username: "user", Email: "", Password: "pw"},
		{Username: "user", Email: "a@b.com", Password: ""},
		{Username: "   ", Email: "a@b.com", Password: "pw"},
	}
	for _, params := range cases {
		if _, err := as.CreateUser(context.Background(), params); !errors.Is(err, ErrValidation) {
			t.Errorf("Expected ErrValidation for %+v, got %v", params, err)
		}
	}
}

// When both the username and the email are taken, the username error wins.
func TestCreateUser_DuplicateUsernamePrecedence(t *testing.T) {
	repo := mock.NewAdminRepository()
	existing := activeAdmin(t, "taken", "whatever")
	existing.Email = "taken@example.com"
	repo.FindByUsernameOrEmailFunc = func(ctx context.Context, username, email string) ([]*models.AdminUser, error) {
		return []*models.AdminUser{existing}, nil
	}

	as := NewAdminServiceWithRepo(repo)
	_, err := as.CreateUser(context.Background(), CreateUserParams{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "pw",
	})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Expected ErrDuplicateUsername, got %v", err)
	}
	if len(repo.Calls["Create"]) != 0 {
		t.Error("Expected no Create call after duplicate check")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := mock.NewAdminRepository()
	existing := activeAdmin(t, "someoneelse", "whatever")
	existing.Email = "taken@example.com"
	repo.FindByUsernameOrEmailFunc = func(ctx context.Context, username, email string) ([]*models.AdminUser, error) {
		return []*models.AdminUser{existing}, nil
	}

	as := NewAdminServiceWithRepo(repo)
	_, err := as.CreateUser(context.Background(), CreateUserParams{
		Username: "fresh",
		Email:    "taken@example.com",
		Password: "pw",
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got %v", err)
	}
}

// The pre-check can race with a concurrent insert; the database constraint
// error must surface as the same duplicate error.
func TestCreateUser_DuplicateFromConstraint(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.CreateFunc = func(ctx context.Context, admin *models.AdminUser) error {
		return repositories.ErrDuplicateUsername
	}

	as := NewAdminServiceWithRepo(repo)
	_, err := as.CreateUser(context.Background(), CreateUserParams{
		Username: "racer",
		Email:    "racer@example.com",
		Password: "pw",
	})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Expected ErrDuplicateUsername from constraint, got %v", err)
	}
}

func TestGetAllUsers_EmptyList(t *testing.T) {
	as := NewAdminServiceWithRepo(mock.NewAdminRepository())

	users, err := as.GetAllUsers(context.Background())
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if users == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(users) != 0 {
		t.Errorf("Expected 0 users, got %d", len(users))
	}
}

func TestUpdateUserStatus_NotFound(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, isActive bool) error {
		return repositories.ErrNotFound
	}

	as := NewAdminServiceWithRepo(repo)
	err := as.UpdateUserStatus(context.Background(), uuid.New(), false)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		return repositories.ErrNotFound
	}

	as := NewAdminServiceWithRepo(repo)
	err := as.DeleteUser(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestHasAdmins(t *testing.T) {
	repo := mock.NewAdminRepository()

	as := NewAdminServiceWithRepo(repo)
	has, err := as.HasAdmins(context.Background())
	if err != nil {
		t.Fatalf("HasAdmins failed: %v", err)
	}
	if has {
		t.Error("Expected no admins in empty store")
	}

	repo.CountFunc = func(ctx context.Context) (int, error) { return 3, nil }
	has, err = as.HasAdmins(context.Background())
	if err != nil {
		t.Fatalf("HasAdmins failed: %v", err)
	}
	if !has {
		t.Error("Expected HasAdmins to be true with 3 accounts")
	}
}
