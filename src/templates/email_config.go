package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	textTemplate "text/template"

	"gopkg.in/yaml.v3"
)

//go:embed emails/*
var emailTemplates embed.FS

// EmailConfig holds notification email configuration from emails/config.yaml
type EmailConfig struct {
	Branding struct {
		Name    string `yaml:"name"`
		Tagline string `yaml:"tagline"`
		Website string `yaml:"website"`
	} `yaml:"branding"`

	Design struct {
		PrimaryColor string `yaml:"primary_color"`
		TextColor    string `yaml:"text_color"`
		MutedColor   string `yaml:"muted_color"`
		LightBg      string `yaml:"light_bg"`
		AccentBg     string `yaml:"accent_bg"`
	} `yaml:"design"`

	Subjects struct {
		QuizLead    string `yaml:"quiz_lead"`
		ContactForm string `yaml:"contact_form"`
	} `yaml:"subjects"`
}

// LoadEmailConfig loads email configuration from the embedded config.yaml
func LoadEmailConfig() (*EmailConfig, error) {
	data, err := emailTemplates.ReadFile("emails/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read email config: %w", err)
	}

	var config EmailConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse email config: %w", err)
	}

	return &config, nil
}

// QuizLeadData holds data for the quiz-lead notification template
type QuizLeadData struct {
	Name        string
	Email       string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	Features    string
	ReceivedAt  string

	// Config-based data
	BrandName    string
	PrimaryColor string
	TextColor    string
	MutedColor   string
	LightBg      string
	AccentBg     string
}

// ContactMessageData holds data for the contact-form notification template
type ContactMessageData struct {
	FirstName   string
	LastName    string
	Email       string
	Company     string
	ProjectType string
	Message     string
	ReceivedAt  string

	// Config-based data
	BrandName    string
	PrimaryColor string
	TextColor    string
	MutedColor   string
	LightBg      string
	AccentBg     string
}

// RenderQuizLeadHTML renders the quiz-lead notification HTML body
func RenderQuizLeadHTML(data QuizLeadData) (string, error) {
	return renderHTML("emails/quiz-lead.html", "quiz-lead", data)
}

// RenderQuizLeadText renders the quiz-lead notification plain text body
func RenderQuizLeadText(data QuizLeadData) (string, error) {
	return renderText("emails/quiz-lead.txt", "quiz-lead-text", data)
}

// RenderContactMessageHTML renders the contact-form notification HTML body
func RenderContactMessageHTML(data ContactMessageData) (string, error) {
	return renderHTML("emails/contact-message.html", "contact-message", data)
}

// RenderContactMessageText renders the contact-form notification plain text body
func RenderContactMessageText(data ContactMessageData) (string, error) {
	return renderText("emails/contact-message.txt", "contact-message-text", data)
}

func renderHTML(path, name string, data interface{}) (string, error) {
	tmplData, err := emailTemplates.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplData))
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s: %w", path, err)
	}
	return buf.String(), nil
}

func renderText(path, name string, data interface{}) (string, error) {
	tmplData, err := emailTemplates.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	tmpl, err := textTemplate.New(name).Parse(string(tmplData))
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s: %w", path, err)
	}
	return buf.String(), nil
}
