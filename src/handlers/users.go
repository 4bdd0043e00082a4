package handlers

import (
	"errors"
	"net/http"

	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UsersHandler handles admin account management
type UsersHandler struct {
	admins *services.AdminService
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(admins *services.AdminService) *UsersHandler {
	return &UsersHandler{admins: admins}
}

// CreateUserRequest represents the request body for creating an admin account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

// HandleCreateUser creates a new admin account
func (uh *UsersHandler) HandleCreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	admin, err := uh.admins.CreateUser(c.Request.Context(), services.CreateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		case errors.Is(err, services.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
		case errors.Is(err, services.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": admin,
	})
}

// UserListResponse represents a list of admin accounts with total count
type UserListResponse struct {
	Users []*models.AdminUser `json:"users"`
	Total int                 `json:"total"`
}

// HandleListUsers returns all admin accounts, newest first
func (uh *UsersHandler) HandleListUsers(c *gin.Context) {
	users, err := uh.admins.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to list users",
		})
		return
	}

	c.JSON(http.StatusOK, UserListResponse{
		Users: users,
		Total: len(users),
	})
}

// UpdateStatusRequest represents the request body for the status toggle
type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// HandleUpdateUserStatus activates or deactivates an admin account
func (uh *UsersHandler) HandleUpdateUserStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := uh.admins.UpdateUserStatus(c.Request.Context(), id, *req.IsActive); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// HandleDeleteUser hard-deletes an admin account
func (uh *UsersHandler) HandleDeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := uh.admins.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
