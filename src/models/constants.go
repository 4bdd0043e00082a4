package models

// LeadStatus represents the follow-up state of a quiz lead or contact message
type LeadStatus string

const (
	// LeadStatusNew indicates the lead has not been contacted yet
	LeadStatusNew LeadStatus = "new"
	// LeadStatusContacted indicates an initial reply was sent
	LeadStatusContacted LeadStatus = "contacted"
	// LeadStatusQualified indicates the lead is a real prospect
	LeadStatusQualified LeadStatus = "qualified"
	// LeadStatusClosed indicates the lead was won or dropped
	LeadStatusClosed LeadStatus = "closed"
)

// ValidLeadStatus reports whether s is a known lead status value
func ValidLeadStatus(s string) bool {
	switch LeadStatus(s) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusClosed:
		return true
	}
	return false
}

// NotificationStatus represents the delivery state of an email notification
type NotificationStatus string

const (
	// NotificationStatusPending indicates the email has not been sent yet
	NotificationStatusPending NotificationStatus = "pending"
	// NotificationStatusSent indicates the email was accepted by the provider
	NotificationStatusSent NotificationStatus = "sent"
	// NotificationStatusFailed indicates sending failed
	NotificationStatusFailed NotificationStatus = "failed"
)

// Notification template types
const (
	// TemplateQuizLead identifies the quiz-lead notification email
	TemplateQuizLead = "quiz_lead"
	// TemplateContactForm identifies the contact-form notification email
	TemplateContactForm = "contact_form"
)
