// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"time"

	"github.com/resendlabs/resend-go"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/email/templates"
)

// Service defines the interface for sending emails, allowing for mock
// implementations in tests.
type Service interface {
	SendContactNotification(msg *content.ContactMessage) error
}

// ResendClient is the concrete implementation of the email Service using
// the Resend API.
type ResendClient struct {
	client  *resend.Client
	from    string
	toEmail string
}

// NewService creates a new email service client, returning the Service
// interface.
func NewService(apiKey, fromEmail, fromName, toEmail string) (Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if toEmail == "" {
		return nil, fmt.Errorf("contact notification recipient is required")
	}

	return &ResendClient{
		client:  resend.NewClient(apiKey),
		from:    fmt.Sprintf("%s <%s>", fromName, fromEmail),
		toEmail: toEmail,
	}, nil
}

// SendContactNotification composes and sends the owner notification for a
// contact form submission. Reply-To points at the sender so the owner can
// answer from their mail client.
func (c *ResendClient) SendContactNotification(msg *content.ContactMessage) error {
	content := templates.GetContactNotificationContent(templates.ContactNotificationProps{
		Name:       msg.Name,
		Email:      msg.Email,
		Message:    msg.Message,
		ReceivedAt: msg.CreatedAt.Format(time.RFC1123),
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: fmt.Sprintf("New message from %s", msg.Name),
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{c.toEmail},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Portfolio contact: %s", msg.Name),
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send contact notification via Resend: %w", err)
	}

	return nil
}
