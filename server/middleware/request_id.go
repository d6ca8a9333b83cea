package middleware

import (
	"context"
)

// RequestIDKey is the context key for the request ID.
type RequestIDKey struct{}

// GetRequestID extracts the request ID from a context.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	reqID, ok := ctx.Value(RequestIDKey{}).(string)
	if !ok {
		return ""
	}
	return reqID
}

// SetRequestID stores the request ID in a context.
func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, reqID)
}
