package email

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogSender logs emails instead of sending them.
// Useful for development and testing.
type LogSender struct {
	log *zap.Logger
}

// NewLogSender creates a new log-based email sender.
func NewLogSender(log *zap.Logger) *LogSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSender{log: log.Named("email.log")}
}

// Send logs the email details and returns a synthetic id.
func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := "log-" + uuid.NewString()
	s.log.Info("email (dev mode - not actually sent)",
		zap.String("id", id),
		zap.String("from", msg.From),
		zap.Strings("to", msg.To),
		zap.String("reply_to", msg.ReplyTo),
		zap.String("subject", msg.Subject),
		zap.String("html", msg.HTML),
	)
	return id, nil
}

func (s *LogSender) IsConfigured() bool {
	return true
}

func (s *LogSender) Name() string {
	return ProviderLog
}
