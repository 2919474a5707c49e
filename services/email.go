package services

import (
	"context"
	"fmt"
	"northbridge_site_go/config"
	"northbridge_site_go/logging"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// SubmissionIDHeader carries the submission id on the outbound email.
const SubmissionIDHeader = "X-Submission-ID"

// Mailer delivers a contact message and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg *ContactMessage) (string, error)
}

// NewMailer returns the console mailer in test mode and the Resend mailer otherwise.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.EmailTestMode {
		return &ConsoleMailer{Recipient: cfg.ContactRecipient}
	}
	return NewResendMailer(cfg, nil)
}

// ResendMailer sends contact messages through the Resend API.
type ResendMailer struct {
	client    *resend.Client
	from      string
	recipient string
}

// NewResendMailer builds a mailer for cfg. When client is nil one is created from
// cfg.ResendAPIKey; with no key every Send fails.
func NewResendMailer(cfg *config.Config, client *resend.Client) *ResendMailer {
	if client == nil && cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}
	return &ResendMailer{
		client:    client,
		from:      fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		recipient: cfg.ContactRecipient,
	}
}

// Send sends msg exactly once. It never retries.
func (m *ResendMailer) Send(ctx context.Context, msg *ContactMessage) (string, error) {
	if m.client == nil {
		return "", fmt.Errorf("RESEND_API_KEY not configured")
	}
	if msg.TextBody == "" {
		return "", fmt.Errorf("email must have a TextBody")
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.recipient},
		Subject: msg.Subject,
		Text:    msg.TextBody,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}
	if msg.SubmissionID != "" {
		params.Headers = map[string]string{SubmissionIDHeader: msg.SubmissionID}
	}

	start := time.Now()
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	ObserveProviderLatency(time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("failed to send email via Resend: %w", err)
	}

	logging.L().Info("contact email sent",
		zap.String("provider_id", sent.Id),
		zap.String("submission_id", msg.SubmissionID),
	)
	return sent.Id, nil
}

// ConsoleMailer logs contact messages instead of sending them.
type ConsoleMailer struct {
	Recipient string
}

func (m *ConsoleMailer) Send(_ context.Context, msg *ContactMessage) (string, error) {
	logging.L().Info("contact email (test mode, not sent)",
		zap.String("to", m.Recipient),
		zap.String("reply_to", msg.ReplyTo),
		zap.String("subject", msg.Subject),
		zap.String("submission_id", msg.SubmissionID),
		zap.String("body", truncate(msg.TextBody, 2000)),
	)
	return "console-" + msg.SubmissionID, nil
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return strings.ToValidUTF8(s[:maxLen], "")
}
