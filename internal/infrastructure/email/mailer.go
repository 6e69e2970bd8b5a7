package email

import (
	"context"

	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/config"
)

// Mailer delivers one plain-text message to the operator.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// FromConfig picks the transport: Resend when an API key is present,
// SMTP when a host is. Nil means delivery is not configured and the
// notification path becomes a no-op.
func FromConfig(cfg config.EmailConfig) Mailer {
	if cfg.From == "" || cfg.To == "" {
		return nil
	}
	if cfg.ResendAPIKey != "" {
		return NewResendMailer(cfg.ResendAPIKey, cfg.From, cfg.To)
	}
	if cfg.Host != "" {
		return NewSMTPMailer(cfg)
	}
	return nil
}
