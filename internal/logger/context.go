package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds request-scoped logging context
type LogContext struct {
	TraceID   string    // OpenTelemetry trace ID
	SpanID    string    // OpenTelemetry span ID
	RequestID string    // HTTP request ID (chi middleware)
	AttemptID string    // Login attempt ID
	Operation string    // Operation name (login, whoami, health, etc.)
	AuthType  string    // Active authentication mode (SIMPLE, KERBEROS)
	Platform  string    // Platform facts (unix/64-bit/standard)
	ClientIP  string    // Client IP address (without port)
	StartTime time.Time // For duration calculation
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for the given operation
func NewLogContext(operation string) *LogContext {
	return &LogContext{
		Operation: operation,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	clone := *lc
	return &clone
}

// WithAuth returns a copy with the authentication mode and platform set
func (lc *LogContext) WithAuth(authType, platform string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.AuthType = authType
		clone.Platform = platform
	}
	return clone
}

// WithRequest returns a copy with HTTP request info set
func (lc *LogContext) WithRequest(requestID, clientIP string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.RequestID = requestID
		clone.ClientIP = clientIP
	}
	return clone
}

// WithAttempt returns a copy with the login attempt ID set
func (lc *LogContext) WithAttempt(attemptID string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.AttemptID = attemptID
	}
	return clone
}

// WithTrace returns a copy with trace info set
func (lc *LogContext) WithTrace(traceID, spanID string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.TraceID = traceID
		clone.SpanID = spanID
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
