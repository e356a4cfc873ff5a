// Package email delivers transactional mail. Two transports are
// supported: the Brevo HTTP API and direct SMTP via go-mail. Both render
// the same embedded HTML templates; NewSender picks the transport from
// configuration.
package email

import (
	"context"

	"immowert_backend/platform/config"
)

// ValuationNotification is the data rendered into the back-office
// notification for a completed valuation.
type ValuationNotification struct {
	SubmissionID    string
	PropertyType    string
	Address         string
	City            string
	ContactName     string
	ContactEmail    string
	Price           string
	Location        string
	Condition       string
	IncreaseFactors []string
	DecreaseFactors []string
	DefaultsApplied []string
}

type Sender interface {
	SendValuationNotification(ctx context.Context, toEmail string, n ValuationNotification) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

// NoopSender is used when email delivery is disabled.
type NoopSender struct{}

func (NoopSender) SendValuationNotification(ctx context.Context, toEmail string, n ValuationNotification) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}

// NewSender selects the transport: SMTP when a host is configured,
// otherwise Brevo when an API key is present, otherwise a no-op.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}
	}

	if cfg.GetSMTPHost() != "" {
		return NewSMTPSender(
			cfg.GetSMTPHost(), cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(), cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(), cfg.GetEmailFromName(),
		)
	}

	if cfg.GetBrevoAPIKey() != "" {
		return NewBrevoSender(cfg.GetBrevoAPIKey(), cfg.GetEmailFromAddress(), cfg.GetEmailFromName())
	}

	return NoopSender{}
}
