package ports

import (
	"context"

	"github.com/rs/xid"
)

// Logger is the structured logging contract shared by every package.
// Fields are key/value pairs; implementations add the correlation ID found
// in the context. Keys in use: correlation_id, component, field_id, fields,
// feedback_state, event_type.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID returns the ID stored by WithCorrelationID, or "".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// GenerateCorrelationID returns a new globally unique, time-sortable ID.
// Commands create one per run.
func GenerateCorrelationID() string {
	return xid.New().String()
}
