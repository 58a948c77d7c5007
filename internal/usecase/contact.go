package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"estate-site-backend/config"
	"estate-site-backend/internal/domain"
	"estate-site-backend/internal/metrics"
	"estate-site-backend/pkg/email"
	"estate-site-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ContactSettings are the addresses and limits the contact pipeline runs with.
type ContactSettings struct {
	From            string
	To              string
	DispatchTimeout time.Duration
}

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
	settings ContactSettings
	log      *zap.Logger
	metrics  *metrics.Metrics
}

// NewContactUsecase creates a new contact usecase. validate must have the
// contact tags registered (see validation.New).
func NewContactUsecase(
	sender email.Sender,
	validate *validator.Validate,
	settings ContactSettings,
	log *zap.Logger,
	m *metrics.Metrics,
) domain.ContactUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	if settings.DispatchTimeout <= 0 {
		settings.DispatchTimeout = 15 * time.Second
	}
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		settings: settings,
		log:      log.Named("contact"),
		metrics:  m,
	}
}

func (uc *contactUsecase) IsConfigured() bool {
	return uc.sender != nil && uc.sender.IsConfigured()
}

// ValidateSubmission checks name, email, phone and message in that order.
func (uc *contactUsecase) ValidateSubmission(raw domain.RawSubmission) (domain.ValidatedContact, error) {
	name, ok := trimmedString(raw, "name")
	if !ok || uc.validate.Var(name, validation.TagMinUTF16+"=2") != nil {
		return domain.ValidatedContact{}, domain.NewValidationError("name", domain.MsgNameRequired)
	}

	rawEmail, ok := raw["email"].(string)
	if !ok || rawEmail == "" {
		return domain.ValidatedContact{}, domain.NewValidationError("email", domain.MsgEmailRequired)
	}
	emailAddr := strings.TrimSpace(rawEmail)
	if uc.validate.Var(emailAddr, validation.TagContactEmail) != nil {
		return domain.ValidatedContact{}, domain.NewValidationError("email", domain.MsgEmailInvalid)
	}

	// Phone is optional; a non-string value is treated as absent.
	phone, _ := trimmedString(raw, "phone")
	if phone != "" && uc.validate.Var(phone, validation.TagContactPhone) != nil {
		return domain.ValidatedContact{}, domain.NewValidationError("phone", domain.MsgPhoneInvalid)
	}

	message, ok := trimmedString(raw, "message")
	if !ok || uc.validate.Var(message, validation.TagMinUTF16+"=10") != nil {
		return domain.ValidatedContact{}, domain.NewValidationError("message", domain.MsgMessageRequired)
	}

	return domain.ValidatedContact{
		Name:    name,
		Email:   emailAddr,
		Phone:   phone,
		Message: message,
	}, nil
}

// SendContactMessage validates the submission and makes exactly one delivery attempt.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, raw domain.RawSubmission) (*domain.DispatchResult, error) {
	reqID := domain.RequestIDFrom(ctx)

	if !uc.IsConfigured() {
		uc.metrics.Submission(metrics.OutcomeUnconfigured)
		uc.log.Error("contact form submitted but email provider is not configured", zap.String("request_id", reqID))
		return nil, domain.ErrContactNotConfigured
	}

	contact, err := uc.ValidateSubmission(raw)
	if err != nil {
		uc.metrics.Submission(metrics.OutcomeInvalid)
		return nil, err
	}

	notification, err := uc.buildNotification(contact)
	if err != nil {
		uc.metrics.Submission(metrics.OutcomeFailed)
		uc.log.Error("failed to render contact email", zap.Error(err), zap.String("request_id", reqID))
		return nil, fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.settings.DispatchTimeout)
	defer cancel()

	start := time.Now()
	id, err := uc.sender.Send(sendCtx, email.Message{
		From:    notification.From,
		To:      []string{notification.To},
		ReplyTo: notification.ReplyTo,
		Subject: notification.Subject,
		HTML:    notification.HTML,
	})
	uc.metrics.Dispatch(uc.sender.Name(), time.Since(start))

	if err != nil {
		uc.metrics.Submission(metrics.OutcomeFailed)
		uc.log.Error("failed to send contact email",
			zap.Error(err),
			zap.String("provider", uc.sender.Name()),
			zap.String("from", notification.From),
			zap.String("to", notification.To),
			zap.String("request_id", reqID),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	uc.metrics.Submission(metrics.OutcomeSent)
	uc.log.Info("contact email sent",
		zap.String("id", id),
		zap.String("provider", uc.sender.Name()),
		zap.String("request_id", reqID),
	)

	return &domain.DispatchResult{ID: id}, nil
}

func (uc *contactUsecase) buildNotification(contact domain.ValidatedContact) (domain.NotificationEmail, error) {
	html, err := email.RenderContactNotification(email.ContactEmailData{
		SenderName:  contact.Name,
		SenderEmail: contact.Email,
		SenderPhone: contact.Phone,
		Message:     contact.Message,
	})
	if err != nil {
		return domain.NotificationEmail{}, err
	}

	from := strings.TrimSpace(uc.settings.From)
	if from == "" {
		from = config.DefaultFromEmail
	}

	return domain.NotificationEmail{
		From:    from,
		To:      uc.settings.To,
		ReplyTo: contact.Email,
		Subject: domain.ContactSubjectLabel + contact.Name,
		HTML:    html,
	}, nil
}

// trimmedString reports whether raw[key] is a string and returns it trimmed.
func trimmedString(raw domain.RawSubmission, key string) (string, bool) {
	s, ok := raw[key].(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}
