package bootstrap

import (
	"log/slog"

	"rentdesk/internal/infra/mailer"
	"rentdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config) mailer.Mailer {
	if cfg.Mail.SendGridAPIKey == "" {
		slog.Warn("SENDGRID_API_KEY not set, email notifications disabled")
		return mailer.NopMailer{}
	}
	return mailer.NewSendGridMailer(cfg.Mail)
}
