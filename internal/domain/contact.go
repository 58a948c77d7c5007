package domain

import (
	"context"
	"errors"
)

// RawSubmission is the untrusted contact form body. Values keep their decoded
// JSON types until validation checks them.
type RawSubmission map[string]interface{}

// ContactRequest documents the expected JSON body of POST /contact.
type ContactRequest struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Phone   string `json:"phone,omitempty" example:"(561) 418-2016"`
	Message string `json:"message" example:"I would like more information please."`
}

// ValidatedContact is a submission whose fields all passed validation.
// Only ValidateSubmission constructs it.
type ValidatedContact struct {
	Name    string
	Email   string
	Phone   string // empty when the submitter left it blank
	Message string
}

// NotificationEmail is the message handed to the delivery provider.
type NotificationEmail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// DispatchResult carries the provider-assigned message id, if any.
type DispatchResult struct {
	ID string
}

// ContactSubmissionResponse is the 200 body.
type ContactSubmissionResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id,omitempty" example:"4ef9a417-02e9-4d39-ad75-9611e0fcc33c"`
}

// User-facing messages for the contact form.
const (
	MsgInvalidBody      = "Invalid request body."
	MsgNameRequired     = "Name is required (at least 2 characters)."
	MsgEmailRequired    = "Email is required."
	MsgEmailInvalid     = "Please enter a valid email address."
	MsgPhoneInvalid     = "Please enter a valid phone number."
	MsgMessageRequired  = "Message is required (at least 10 characters)."
	MsgNotConfigured    = "Contact form is not configured. Please try again later."
	MsgDispatchFailed   = "Failed to send message. Please try again or contact us directly."
	ContactSubjectLabel = "Contact form: "
)

var (
	ErrContactNotConfigured = errors.New("email service is not configured")
	ErrDispatchFailed       = errors.New("email dispatch failed")
)

// ValidationError reports the first contact field that failed its rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// IsConfigured reports whether a submission could be delivered at all.
	IsConfigured() bool
	// ValidateSubmission checks fields in order and stops at the first failure.
	// A non-nil error is always a *ValidationError.
	ValidateSubmission(raw RawSubmission) (ValidatedContact, error)
	// SendContactMessage validates, renders and dispatches one submission.
	SendContactMessage(ctx context.Context, raw RawSubmission) (*DispatchResult, error)
}
