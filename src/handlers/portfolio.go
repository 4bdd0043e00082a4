package handlers

import (
	"errors"
	"net/http"

	"github.com/digitalfiroj/studio-site-server/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PortfolioHandler handles the public portfolio listing and admin CRUD
type PortfolioHandler struct {
	portfolio *services.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolio *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// HandlePublicList returns enabled portfolio items for the marketing site
func (ph *PortfolioHandler) HandlePublicList(c *gin.Context) {
	items, err := ph.portfolio.GetEnabledItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list portfolio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
	})
}

// HandleAdminList returns every portfolio item including disabled ones
func (ph *PortfolioHandler) HandleAdminList(c *gin.Context) {
	items, err := ph.portfolio.GetAllItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list portfolio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

// HandleCreate creates a new portfolio item
func (ph *PortfolioHandler) HandleCreate(c *gin.Context) {
	var params services.PortfolioParams
	if err := c.BindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := ph.portfolio.CreateItem(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create portfolio item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// HandleUpdate replaces the editable fields of a portfolio item
func (ph *PortfolioHandler) HandleUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var params services.PortfolioParams
	if err := c.BindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := ph.portfolio.UpdateItem(c.Request.Context(), id, params); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		case errors.Is(err, services.ErrPortfolioNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update portfolio item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// EnabledRequest represents the request body for the visibility toggle
type EnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// HandleSetEnabled toggles whether an item is publicly visible
func (ph *PortfolioHandler) HandleSetEnabled(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req EnabledRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := ph.portfolio.SetEnabled(c.Request.Context(), id, *req.Enabled); err != nil {
		if errors.Is(err, services.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle portfolio item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// HandleDelete hard-deletes a portfolio item
func (ph *PortfolioHandler) HandleDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := ph.portfolio.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete portfolio item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
