package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	client *resend.Client
	apiKey string
}

type ResendOption func(*resendOptions)

type resendOptions struct {
	httpClient *http.Client
	baseURL    string
}

// WithResendHTTPClient replaces the HTTP client used for API calls.
func WithResendHTTPClient(c *http.Client) ResendOption {
	return func(o *resendOptions) { o.httpClient = c }
}

// WithResendBaseURL points the client at another API endpoint.
func WithResendBaseURL(u string) ResendOption {
	return func(o *resendOptions) { o.baseURL = u }
}

// NewResendSender creates a new Resend email sender.
func NewResendSender(apiKey string, opts ...ResendOption) *ResendSender {
	o := resendOptions{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}

	client := resend.NewCustomClient(o.httpClient, apiKey)
	if o.baseURL != "" {
		base := o.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		if u, err := url.Parse(base); err == nil {
			client.BaseURL = u
		}
	}

	return &ResendSender{
		client: client,
		apiKey: apiKey,
	}
}

// Send sends an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}
	if sent == nil {
		return "", nil
	}
	return sent.Id, nil
}

func (s *ResendSender) IsConfigured() bool {
	return s.apiKey != ""
}

func (s *ResendSender) Name() string {
	return ProviderResend
}
