package requestid

import (
	"context"

	"fleetgateway/internal/infrastructure/upstream"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "requestID"

type RequestID struct{}

func New() *RequestID {
	return &RequestID{}
}

// Middleware reuses the caller's X-Request-ID or mints one, echoes it on the
// response and stores it in the request context.
func (r *RequestID) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(upstream.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.SetHeader(upstream.RequestIDHeader, id)
		next(huma.WithContext(ctx, WithID(ctx.Context(), id)))
	}
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
