package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizLead represents a submission from the lead-generation quiz
type QuizLead struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     *string   `json:"company"`
	ProjectType string    `json:"project_type"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Features    string    `json:"features"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContactMessage represents a submission from the contact form
type ContactMessage struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Company     *string   `json:"company"`
	ProjectType *string   `json:"project_type"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
