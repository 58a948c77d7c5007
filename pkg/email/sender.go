// Package email provides the contact notification template and the
// transactional email providers that deliver it.
package email

import (
	"context"
	"strings"

	"estate-site-backend/config"

	"go.uber.org/zap"
)

// Provider names accepted by EMAIL_PROVIDER.
const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
	ProviderLog    = "log"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender is the interface for email providers.
type Sender interface {
	// Send delivers msg once and returns the provider message id, which may be empty.
	Send(ctx context.Context, msg Message) (string, error)
	// IsConfigured reports whether the provider credential is present.
	IsConfigured() bool
	Name() string
}

// NewSender builds the provider selected in cfg. Unknown names fall back to Resend.
func NewSender(cfg *config.Config, log *zap.Logger) Sender {
	if log == nil {
		log = zap.NewNop()
	}
	switch strings.ToLower(cfg.EmailProvider) {
	case ProviderSMTP:
		return NewSMTPSender(cfg)
	case ProviderLog:
		return NewLogSender(log)
	case ProviderResend:
	default:
		log.Warn("unknown EMAIL_PROVIDER, using resend", zap.String("provider", cfg.EmailProvider))
	}

	var opts []ResendOption
	if cfg.ResendBaseURL != "" {
		opts = append(opts, WithResendBaseURL(cfg.ResendBaseURL))
	}
	return NewResendSender(cfg.ResendAPIKey, opts...)
}
