package email

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// ResendMailer delivers through the Resend transactional-email API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendMailer(apiKey, from, to string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (m *ResendMailer) Send(ctx context.Context, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Text:    body,
	}
	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}
