// Package context carries the request id and the request-scoped logger
// through API handlers, usecases and worker event processing.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is echoed on API responses and forwarded on order events.
	HeaderXRequestID = "X-Request-Id"
)

// RequestID returns the id stored on the echo context. Responses written
// before the middleware ran get a fresh id.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the id on the echo context for response envelopes.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestScope attaches requestID and a logger tagged with it to ctx.
// The tagged logger is returned for the caller's own log lines.
func WithRequestScope(ctx context.Context, requestID string, base *slog.Logger) (context.Context, *slog.Logger) {
	scoped := base.With(slog.String("request_id", requestID))
	ctx = context.WithValue(ctx, KeyRequestID, requestID)
	ctx = context.WithValue(ctx, KeyLogger, scoped)

	return ctx, scoped
}

// RequestIDFromContext returns the id set by WithRequestScope, or "".
// Order events copy it so the worker logs under the same id.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// Logger returns the request-scoped logger, or nil outside a request.
func Logger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// LoggerOrDefault is what services log through: the request logger when one
// is in scope, fallback otherwise.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := Logger(ctx); logger != nil {
		return logger
	}

	return fallback
}
