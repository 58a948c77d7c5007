package usecase

import (
	"context"

	"estate-site-backend/pkg/email"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sender email.Sender
}

func NewHealthUsecase(sender email.Sender) HealthUsecase {
	return &healthUsecase{sender: sender}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":       "ok",
		"contact_form": "unconfigured",
	}
	if u.sender != nil {
		status["email_provider"] = u.sender.Name()
		if u.sender.IsConfigured() {
			status["contact_form"] = "configured"
		}
	}
	return status
}
