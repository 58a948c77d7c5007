package email

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"

	"estate-site-backend/config"

	"github.com/google/uuid"
)

// SMTPSender handles sending emails via an SMTP relay
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates a new SMTP sender from configuration
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		sendMail: smtp.SendMail,
	}
}

// Send relays msg and returns the generated Message-ID.
// net/smtp has no context support, so a cancelled ctx abandons the wait
// while the dial finishes in the background.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	envelopeFrom := msg.From
	if addr, err := mail.ParseAddress(msg.From); err == nil {
		envelopeFrom = addr.Address
	}

	domain := "localhost"
	if at := strings.LastIndex(envelopeFrom, "@"); at >= 0 {
		domain = envelopeFrom[at+1:]
	}
	messageID := fmt.Sprintf("%s@%s", uuid.NewString(), domain)

	// Construct MIME message
	raw := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"Message-ID: <%s>\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		msg.From,
		strings.Join(msg.To, ", "),
		msg.ReplyTo,
		headerSafe(msg.Subject),
		messageID,
		msg.HTML,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(addr, auth, envelopeFrom, msg.To, raw)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("smtp: failed to send email: %w", err)
		}
		return messageID, nil
	case <-ctx.Done():
		return "", fmt.Errorf("smtp: %w", ctx.Err())
	}
}

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func (s *SMTPSender) Name() string {
	return ProviderSMTP
}

// headerSafe strips CR/LF so user text cannot inject extra headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
