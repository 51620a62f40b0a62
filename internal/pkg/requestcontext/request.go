// Package requestcontext carries request-scoped identifiers on a
// context.Context so layers below the HTTP handler can log them.
package requestcontext

import "context"

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// DriverIDKey is the context key for the authenticated driver
	DriverIDKey ContextKey = "driver_id"
)

// WithRequestID returns ctx carrying the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithDriverID returns ctx carrying the authenticated driver id
func WithDriverID(ctx context.Context, driverID string) context.Context {
	return context.WithValue(ctx, DriverIDKey, driverID)
}

// RequestID extracts request ID from context
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// DriverID extracts the driver ID from context
func DriverID(ctx context.Context) string {
	if id, ok := ctx.Value(DriverIDKey).(string); ok {
		return id
	}
	return ""
}
