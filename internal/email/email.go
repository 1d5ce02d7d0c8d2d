// Package email delivers transactional mail. Domain modules depend on the
// Sender interface only; delivery is SMTP via go-mail, or a no-op when mail
// is not configured.
package email

import (
	"context"

	"automation_hub_backend/platform/config"
)

// Sender is the delivery surface the rest of the application sees.
type Sender interface {
	SendBookingConfirmationEmail(ctx context.Context, toEmail, customerName, eventID, slotStart, slotEnd string) error
	SendBookingCancelledEmail(ctx context.Context, toEmail, eventID string) error
}

// NoopSender silently accepts every message. Used when SMTP is not
// configured so callers never branch on mail availability.
type NoopSender struct{}

func (NoopSender) SendBookingConfirmationEmail(ctx context.Context, toEmail, customerName, eventID, slotStart, slotEnd string) error {
	return nil
}

func (NoopSender) SendBookingCancelledEmail(ctx context.Context, toEmail, eventID string) error {
	return nil
}

// NewSender returns an SMTP sender when mail is configured, otherwise a
// NoopSender.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.IsEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}
