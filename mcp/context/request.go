// Package context carries per-call values through context.Context.
package context

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey string

// RequestIDKey is the context key of the per-call request id.
var RequestIDKey = requestIDKey("requestId")

// WithRequestID attaches id to ctx, generating one when id is empty.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id carried by ctx.
func RequestID(ctx context.Context) (string, bool) {
	ret := ctx.Value(RequestIDKey)
	if ret == nil {
		return "", false
	}
	id, ok := ret.(string)
	return id, ok
}
