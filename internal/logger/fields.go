package logger

import (
	"log/slog"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements for log aggregation and querying.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// Login & Identity
	// ========================================================================
	KeyAuth      = "auth"       // Active authentication mode: SIMPLE, KERBEROS
	KeyUsername  = "username"   // Login user name
	KeyProvider  = "provider"   // Login provider name: unix, nt, local
	KeyProviders = "providers"  // Provider chain, in execution order
	KeyPlatform  = "platform"   // Platform facts: unix/64-bit/standard
	KeyModule    = "module"     // Selected OS-native login module
	KeyPrincipal = "principal"  // Principal kind asserted by the OS module
	KeyCacheHit  = "cache_hit"  // Login user served from the identity cache
	KeyAttemptID = "attempt_id" // Login attempt ID, one per chain run

	// ========================================================================
	// HTTP API
	// ========================================================================
	KeyClientIP  = "client_ip"  // Client IP address
	KeyRequestID = "request_id" // HTTP request ID
	KeyMethod    = "method"     // HTTP method
	KeyPath      = "path"       // HTTP request path
	KeyStatus    = "status"     // HTTP status code
	KeyAddress   = "address"    // Listen address

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyOperation  = "operation"   // Operation name
	KeyConfigFile = "config_file" // Configuration file in use
)

// ============================================================================
// Field constructors for type safety
// These functions provide type-safe construction of slog.Attr values.
// ============================================================================

// ----------------------------------------------------------------------------
// Distributed Tracing
// ----------------------------------------------------------------------------

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// ----------------------------------------------------------------------------
// Login & Identity
// ----------------------------------------------------------------------------

// Auth returns a slog.Attr for the authentication mode
func Auth(mode string) slog.Attr {
	return slog.String(KeyAuth, mode)
}

// Username returns a slog.Attr for the login user name
func Username(name string) slog.Attr {
	return slog.String(KeyUsername, name)
}

// Provider returns a slog.Attr for a login provider name
func Provider(name string) slog.Attr {
	return slog.String(KeyProvider, name)
}

// Providers returns a slog.Attr for a provider chain
func Providers(names []string) slog.Attr {
	return slog.Any(KeyProviders, names)
}

// Platform returns a slog.Attr for platform facts
func Platform(facts string) slog.Attr {
	return slog.String(KeyPlatform, facts)
}

// Module returns a slog.Attr for the OS-native login module
func Module(name string) slog.Attr {
	return slog.String(KeyModule, name)
}

// Principal returns a slog.Attr for a principal kind
func Principal(kind string) slog.Attr {
	return slog.String(KeyPrincipal, kind)
}

// CacheHit returns a slog.Attr for cache hit indicator
func CacheHit(hit bool) slog.Attr {
	return slog.Bool(KeyCacheHit, hit)
}

// AttemptID returns a slog.Attr for a login attempt ID
func AttemptID(id string) slog.Attr {
	return slog.String(KeyAttemptID, id)
}

// ----------------------------------------------------------------------------
// HTTP API
// ----------------------------------------------------------------------------

// ClientIP returns a slog.Attr for client IP address
func ClientIP(addr string) slog.Attr {
	return slog.String(KeyClientIP, addr)
}

// RequestID returns a slog.Attr for an HTTP request ID
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// Method returns a slog.Attr for an HTTP method
func Method(m string) slog.Attr {
	return slog.String(KeyMethod, m)
}

// Path returns a slog.Attr for an HTTP request path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Status returns a slog.Attr for an HTTP status code
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// Address returns a slog.Attr for a listen address
func Address(addr string) slog.Attr {
	return slog.String(KeyAddress, addr)
}

// ----------------------------------------------------------------------------
// Operation Metadata
// ----------------------------------------------------------------------------

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Operation returns a slog.Attr for an operation name
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// ConfigFile returns a slog.Attr for the configuration file in use
func ConfigFile(path string) slog.Attr {
	return slog.String(KeyConfigFile, path)
}
