// Package logging defines a minimal structured-logging interface used across
// the client. The default implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "tab entered", "tab", tab, "user", username)
type Logger interface {
	// Debug logs diagnostic detail, typically per request.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Common attribute keys.
const (
	KeyOperation = "operation"
	KeyRequestID = "request_id"
	KeyDuration  = "duration"
	KeyError     = "error"
	KeyTab       = "tab"
	KeyUser      = "user"
)
