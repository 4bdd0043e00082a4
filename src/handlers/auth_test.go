package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/middleware"
	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/repositories"
	"github.com/digitalfiroj/studio-site-server/src/repositories/mock"
	"github.com/digitalfiroj/studio-site-server/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newAuthTestRouter(repo *mock.AdminRepository) (*gin.Engine, *services.SessionService) {
	gin.SetMode(gin.TestMode)
	admins := services.NewAdminServiceWithRepo(repo)
	sessions := services.NewSessionService(admins, "test-secret-for-unit-tests-32ch!", 24)
	handler := NewAuthHandler(admins, sessions)

	router := gin.New()
	router.POST("/admin/login", handler.HandleLogin)
	router.POST("/admin/logout", handler.HandleLogout)
	router.GET("/admin/session", handler.HandleSession)
	return router, sessions
}

func seedAdmin(t *testing.T, repo *mock.AdminRepository, username, password string) *models.AdminUser {
	t.Helper()
	hash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	admin := &models.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	repo.GetActiveByUsernameFunc = func(ctx context.Context, u string) (*models.AdminUser, error) {
		if u == username && admin.IsActive {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
		if id == admin.ID {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}
	return admin
}

func loginBody(t *testing.T, username, password string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	if err != nil {
		t.Fatalf("failed to marshal login request: %v", err)
	}
	return bytes.NewBuffer(body)
}

func TestHandleLogin_Success(t *testing.T) {
	repo := mock.NewAdminRepository()
	seedAdmin(t, repo, "firoj", "secret-password")
	router, _ := newAuthTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", loginBody(t, "firoj", "secret-password"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token in the response")
	}
	if resp.User == nil || resp.User.Username != "firoj" {
		t.Error("expected the authenticated user in the response")
	}

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected a session cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("expected session cookie to be HttpOnly")
	}
	if sessionCookie.Value != resp.Token {
		t.Error("expected cookie value to match the response token")
	}
}

// Unknown username and wrong password must be indistinguishable.
func TestHandleLogin_UniformFailureResponse(t *testing.T) {
	repo := mock.NewAdminRepository()
	seedAdmin(t, repo, "firoj", "secret-password")
	router, _ := newAuthTestRouter(repo)

	attempts := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "firoj", "not-the-password"},
		{"unknown user", "stranger", "whatever"},
	}

	bodies := make([]string, 0, len(attempts))
	for _, attempt := range attempts {
		t.Run(attempt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin/login", loginBody(t, attempt.username, attempt.password))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", w.Code)
			}
			bodies = append(bodies, w.Body.String())
		})
	}

	if len(bodies) == 2 && bodies[0] != bodies[1] {
		t.Errorf("expected identical failure bodies, got %q and %q", bodies[0], bodies[1])
	}
}

func TestHandleLogin_StorageErrorIsNot401(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetActiveByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return nil, errors.New("connection refused")
	}
	router, _ := newAuthTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", loginBody(t, "firoj", "secret-password"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 for storage failure, got %d", w.Code)
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	router, _ := newAuthTestRouter(mock.NewAdminRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"username":"firoj"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleLogout_ClearsCookie(t *testing.T) {
	router, _ := newAuthTestRouter(mock.NewAdminRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be expired")
	}
}

func TestHandleSession_ValidToken(t *testing.T) {
	repo := mock.NewAdminRepository()
	admin := seedAdmin(t, repo, "firoj", "secret-password")
	router, sessions := newAuthTestRouter(repo)

	token, err := sessions.Issue(admin)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a refreshed token")
	}
	if resp.User == nil || resp.User.ID != admin.ID {
		t.Error("expected the revalidated user in the response")
	}
}

func TestHandleSession_NoToken(t *testing.T) {
	router, _ := newAuthTestRouter(mock.NewAdminRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

// A signed token for an account deleted since issuance must fail and
// clear the cookie.
func TestHandleSession_DeletedAccount(t *testing.T) {
	repo := mock.NewAdminRepository()
	router, sessions := newAuthTestRouter(repo)

	token, err := sessions.Issue(&models.AdminUser{ID: uuid.New(), Username: "gone", IsActive: true})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}

	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the stale session cookie to be cleared")
	}
}

func TestHandleSession_DeactivatedAccount(t *testing.T) {
	repo := mock.NewAdminRepository()
	admin := seedAdmin(t, repo, "firoj", "secret-password")
	router, sessions := newAuthTestRouter(repo)

	token, err := sessions.Issue(admin)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	admin.IsActive = false

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 for deactivated account, got %d", w.Code)
	}
}

func TestHandleSession_GarbageToken(t *testing.T) {
	router, _ := newAuthTestRouter(mock.NewAdminRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}
