package services

import (
	"context"
	"fmt"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/logging"
	"github.com/digitalfiroj/studio-site-server/src/models"
	"github.com/digitalfiroj/studio-site-server/src/templates"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mailgun/mailgun-go/v4"
	"github.com/rs/zerolog"
)

// NotifyService sends lead-notification emails and records each attempt
// in the email_notifications table. Notification failures are logged and
// recorded but never propagate to the intake path.
type NotifyService struct {
	pool      *pgxpool.Pool
	mg        *mailgun.MailgunImpl
	fromEmail string
	fromName  string
	recipient string
	log       zerolog.Logger
}

// NewNotifyService creates a new notification service. Mailgun is optional:
// with an empty domain or API key, notifications are recorded as failed
// with a "not configured" reason instead of being sent.
func NewNotifyService(pool *pgxpool.Pool, domain, apiKey, fromEmail, fromName, recipient string) *NotifyService {
	ns := &NotifyService{
		pool:      pool,
		fromEmail: fromEmail,
		fromName:  fromName,
		recipient: recipient,
		log:       logging.NewLogger("notify_service"),
	}
	if domain != "" && apiKey != "" {
		mg := mailgun.NewMailgun(domain, apiKey)
		mg.SetAPIBase(mailgun.APIBaseEU)
		ns.mg = mg
	}
	return ns
}

// Enabled reports whether a Mailgun client is configured
func (ns *NotifyService) Enabled() bool {
	return ns.mg != nil
}

// NotifyQuizLead sends the quiz-lead notification email
func (ns *NotifyService) NotifyQuizLead(ctx context.Context, lead *models.QuizLead) {
	config, err := templates.LoadEmailConfig()
	if err != nil {
		ns.log.Error().Err(err).Msg("failed to load email config")
		return
	}

	data := templates.QuizLeadData{
		Name:         lead.Name,
		Email:        lead.Email,
		ProjectType:  lead.ProjectType,
		Budget:       lead.Budget,
		Timeline:     lead.Timeline,
		Features:     lead.Features,
		ReceivedAt:   lead.CreatedAt.Format(time.RFC1123),
		BrandName:    config.Branding.Name,
		PrimaryColor: config.Design.PrimaryColor,
		TextColor:    config.Design.TextColor,
		MutedColor:   config.Design.MutedColor,
		LightBg:      config.Design.LightBg,
		AccentBg:     config.Design.AccentBg,
	}
	if lead.Company != nil {
		data.Company = *lead.Company
	}

	subject := fmt.Sprintf(config.Subjects.QuizLead, lead.Name)
	htmlBody, err := templates.RenderQuizLeadHTML(data)
	if err != nil {
		ns.log.Error().Err(err).Msg("failed to render quiz lead email")
		return
	}
	textBody, err := templates.RenderQuizLeadText(data)
	if err != nil {
		ns.log.Error().Err(err).Msg("failed to render quiz lead email text")
		return
	}

	ns.deliver(ctx, models.TemplateQuizLead, subject, htmlBody, textBody)
}

// NotifyContactMessage sends the contact-form notification email
func (ns *NotifyService) NotifyContactMessage(ctx context.Context, msg *models.ContactMessage) {
	config, err := templates.LoadEmailConfig()
	if err != nil {
		ns.log.Error().Err(err).Msg("failed to load email config")
		return
	}

	data := templates.ContactMessageData{
		FirstName:    msg.FirstName,
		LastName:     msg.LastName,
		Email:        msg.Email,
		Message:      msg.Message,
		ReceivedAt:   msg.CreatedAt.Format(time.RFC1123),
		BrandName:    config.Branding.Name,
		PrimaryColor: config.Design.PrimaryColor,
		TextColor:    config.Design.TextColor,
		MutedColor:   config.Design.MutedColor,
		LightBg:      config.Design.LightBg,
		AccentBg:     config.Design.AccentBg,
	}
	if msg.Company != nil {
		data.Company = *msg.Company
	}
	if msg.ProjectType != nil {
		data.ProjectType = *msg.ProjectType
	}

	subject := fmt.Sprintf(config.Subjects.ContactForm, msg.FirstName+" "+msg.LastName)
	htmlBody, err := templates.RenderContactMessageHTML(data)
	if err != nil {
		ns.log.Error().Err(err).Msg("failed to render contact message email")
		return
	}
	textBody, err := templates.RenderContactMessageText(data)
	if err != nil {
		ns.log.Error().Err(err).Msg("failed to render contact message email text")
		return
	}

	ns.deliver(ctx, models.TemplateContactForm, subject, htmlBody, textBody)
}

// GetNotifications returns recorded notification attempts, newest first
func (ns *NotifyService) GetNotifications(ctx context.Context, limit int) ([]*models.EmailNotification, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, recipient_email, template_type, subject, status, error, created_at, sent_at
		FROM email_notifications
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := ns.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list notifications: %v", ErrStorage, err)
	}
	defer rows.Close()

	notifications := []*models.EmailNotification{}
	for rows.Next() {
		n := &models.EmailNotification{}
		if err := rows.Scan(
			&n.ID, &n.RecipientEmail, &n.TemplateType, &n.Subject,
			&n.Status, &n.Error, &n.CreatedAt, &n.SentAt,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan notification: %v", ErrStorage, err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read notification rows: %v", ErrStorage, err)
	}
	return notifications, nil
}

// CountNotifications returns the total number of recorded attempts
func (ns *NotifyService) CountNotifications(ctx context.Context) (int, error) {
	var count int
	if err := ns.pool.QueryRow(ctx, `SELECT COUNT(*) FROM email_notifications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to count notifications: %v", ErrStorage, err)
	}
	return count, nil
}

// deliver records a pending notification row, attempts the send, and
// updates the row to sent or failed
func (ns *NotifyService) deliver(ctx context.Context, templateType, subject, htmlBody, textBody string) {
	id := uuid.New()

	insert := `
		INSERT INTO email_notifications (id, recipient_email, template_type, subject, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	if _, err := ns.pool.Exec(ctx, insert, id, ns.recipient, templateType, subject, models.NotificationStatusPending); err != nil {
		ns.log.Error().Err(err).Str("template", templateType).Msg("failed to record notification")
		return
	}

	sendErr := ns.send(ctx, subject, htmlBody, textBody)
	if sendErr != nil {
		reason := sendErr.Error()
		update := `UPDATE email_notifications SET status = $1, error = $2 WHERE id = $3`
		if _, err := ns.pool.Exec(ctx, update, models.NotificationStatusFailed, reason, id); err != nil {
			ns.log.Error().Err(err).Msg("failed to mark notification failed")
		}
		ns.log.Warn().Err(sendErr).Str("template", templateType).Msg("lead notification not sent")
		return
	}

	update := `UPDATE email_notifications SET status = $1, sent_at = NOW() WHERE id = $2`
	if _, err := ns.pool.Exec(ctx, update, models.NotificationStatusSent, id); err != nil {
		ns.log.Error().Err(err).Msg("failed to mark notification sent")
	}
	ns.log.Info().Str("template", templateType).Str("recipient", ns.recipient).Msg("lead notification sent")
}

func (ns *NotifyService) send(ctx context.Context, subject, htmlBody, textBody string) error {
	if ns.mg == nil {
		return fmt.Errorf("mailgun not configured")
	}

	message := ns.mg.NewMessage(
		fmt.Sprintf("%s <%s>", ns.fromName, ns.fromEmail),
		subject,
		textBody,
		ns.recipient,
	)
	message.SetHtml(htmlBody)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, _, err := ns.mg.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send via mailgun: %w", err)
	}
	return nil
}
