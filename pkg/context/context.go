package context

import (
	"context"

	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// NewRequestContext stamps a fresh request ID onto ctx. Callers whose
// transport already assigned one keep it.
func NewRequestContext(ctx context.Context) context.Context {
	if GetRequestID(ctx) != "unknown" {
		return ctx
	}
	return WithRequestID(ctx, uuid.NewString())
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}
