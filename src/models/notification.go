package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailNotification records the outcome of a lead-notification email
type EmailNotification struct {
	ID             uuid.UUID  `json:"id"`
	RecipientEmail string     `json:"recipient_email"`
	TemplateType   string     `json:"template_type"`
	Subject        string     `json:"subject"`
	Status         string     `json:"status"`
	Error          *string    `json:"error,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	SentAt         *time.Time `json:"sent_at"`
}
