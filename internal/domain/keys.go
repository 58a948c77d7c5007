package domain

import "context"

type CtxKey string

const (
	// KeyRequestID carries the X-Request-ID value into usecase logging.
	KeyRequestID CtxKey = "RequestID"
)

// RequestIDFrom returns the request id stored on ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)
	return id
}
