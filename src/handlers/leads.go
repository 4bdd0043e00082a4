package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/digitalfiroj/studio-site-server/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadsHandler handles public form intake and the admin lead dashboard
type LeadsHandler struct {
	leads  *services.LeadService
	notify *services.NotifyService
}

// NewLeadsHandler creates a new leads handler
func NewLeadsHandler(leads *services.LeadService, notify *services.NotifyService) *LeadsHandler {
	return &LeadsHandler{
		leads:  leads,
		notify: notify,
	}
}

// QuizLeadRequest represents the request body for a quiz submission
type QuizLeadRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Company     string `json:"company"`
	ProjectType string `json:"project_type" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
	Timeline    string `json:"timeline" binding:"required"`
	Features    string `json:"features" binding:"required"`
}

// HandleQuizSubmit persists a quiz submission and triggers the notification email
func (lh *LeadsHandler) HandleQuizSubmit(c *gin.Context) {
	var req QuizLeadRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "please fill in all required fields",
		})
		return
	}

	lead, err := lh.leads.CreateQuizLead(c.Request.Context(), services.QuizLeadParams{
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Features:    req.Features,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
		return
	}

	// Send off the request path; a notification failure never blocks the lead
	go lh.notify.NotifyQuizLead(context.Background(), lead)

	c.JSON(http.StatusCreated, gin.H{
		"status": "received",
		"lead":   lead,
	})
}

// ContactRequest represents the request body for a contact form submission
type ContactRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Company     string `json:"company"`
	ProjectType string `json:"project_type"`
	Message     string `json:"message" binding:"required"`
}

// HandleContactSubmit persists a contact message and triggers the notification email
func (lh *LeadsHandler) HandleContactSubmit(c *gin.Context) {
	var req ContactRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "please fill in all required fields",
		})
		return
	}

	msg, err := lh.leads.CreateContactMessage(c.Request.Context(), services.ContactMessageParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	go lh.notify.NotifyContactMessage(context.Background(), msg)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "received",
		"message": msg,
	})
}

// HandleListQuizLeads returns all quiz leads, newest first
func (lh *LeadsHandler) HandleListQuizLeads(c *gin.Context) {
	leads, err := lh.leads.GetQuizLeads(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"total": len(leads),
	})
}

// HandleListContactMessages returns all contact messages, newest first
func (lh *LeadsHandler) HandleListContactMessages(c *gin.Context) {
	msgs, err := lh.leads.GetContactMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": msgs,
		"total":    len(msgs),
	})
}

// LeadStatusRequest represents the request body for a status update
type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleUpdateQuizLeadStatus updates the follow-up status of a quiz lead
func (lh *LeadsHandler) HandleUpdateQuizLeadStatus(c *gin.Context) {
	lh.updateStatus(c, lh.leads.UpdateQuizLeadStatus)
}

// HandleUpdateContactMessageStatus updates the follow-up status of a contact message
func (lh *LeadsHandler) HandleUpdateContactMessageStatus(c *gin.Context) {
	lh.updateStatus(c, lh.leads.UpdateContactMessageStatus)
}

func (lh *LeadsHandler) updateStatus(c *gin.Context, update func(ctx context.Context, id uuid.UUID, status string) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req LeadStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := update(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		case errors.Is(err, services.ErrLeadNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// HandleDeleteQuizLead hard-deletes a quiz lead
func (lh *LeadsHandler) HandleDeleteQuizLead(c *gin.Context) {
	lh.deleteRow(c, lh.leads.DeleteQuizLead)
}

// HandleDeleteContactMessage hard-deletes a contact message
func (lh *LeadsHandler) HandleDeleteContactMessage(c *gin.Context) {
	lh.deleteRow(c, lh.leads.DeleteContactMessage)
}

func (lh *LeadsHandler) deleteRow(c *gin.Context, del func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
