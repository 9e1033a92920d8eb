package mailer

import (
	"context"
	"fmt"

	"rentdesk/internal/pkg/config"
	"rentdesk/internal/pkg/errs"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional email. The zero use case is booking
// notifications, so the interface stays deliberately small.
type Mailer interface {
	Send(ctx context.Context, to, subject, plainText, htmlBody string) error
}

type SendGridMailer struct {
	client      *sendgrid.Client
	fromName    string
	fromAddress string
}

func NewSendGridMailer(cfg config.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		client:      sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, plainText, htmlBody string) error {
	from := mail.NewEmail(m.fromName, m.fromAddress)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlBody)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	if resp.StatusCode >= 400 {
		return errs.New(fmt.Sprintf("sendgrid rejected email: status %d", resp.StatusCode))
	}
	return nil
}

// NopMailer drops email on the floor. Used when no SendGrid key is
// configured, typically local development.
type NopMailer struct{}

func (NopMailer) Send(context.Context, string, string, string, string) error {
	return nil
}
