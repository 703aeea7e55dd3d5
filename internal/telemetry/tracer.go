package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for login operations.
// These follow OpenTelemetry semantic conventions where applicable.
const (
	// ========================================================================
	// Client attributes
	// ========================================================================
	AttrClientIP   = "client.ip"
	AttrClientAddr = "client.address"

	// ========================================================================
	// User/Auth attributes
	// ========================================================================
	AttrUsername  = "user.name"
	AttrAuthType  = "auth.type"
	AttrProvider  = "auth.provider"
	AttrProviders = "auth.providers"
	AttrResult    = "auth.result"
	AttrAttempt   = "auth.attempt_id"

	// ========================================================================
	// Platform attributes
	// ========================================================================
	AttrPlatform  = "platform.facts"
	AttrOS        = "platform.os"
	AttrRuntime   = "platform.runtime"
	AttrModule    = "platform.module"
	AttrPrincipal = "platform.principal"

	// ========================================================================
	// Cache attributes
	// ========================================================================
	AttrCacheHit = "cache.hit"
)

// Span names for operations.
// Format: <component>.<operation>
const (
	// Login attempt: gate, chain execution and identity extraction
	SpanAuthLogin = "auth.login"

	// Single provider inside a login chain
	SpanAuthProvider = "auth.provider"

	// HTTP API requests
	SpanAPIRequest = "api.request"
)

// ============================================================================
// Attribute helpers
// ============================================================================

// ClientIP returns an attribute for the client IP address.
func ClientIP(ip string) attribute.KeyValue {
	return attribute.String(AttrClientIP, ip)
}

// ClientAddr returns an attribute for the full client address (ip:port).
func ClientAddr(addr string) attribute.KeyValue {
	return attribute.String(AttrClientAddr, addr)
}

// Username returns an attribute for the login user name.
func Username(name string) attribute.KeyValue {
	return attribute.String(AttrUsername, name)
}

// AuthType returns an attribute for the authentication mode.
func AuthType(mode string) attribute.KeyValue {
	return attribute.String(AttrAuthType, mode)
}

// Provider returns an attribute for a login provider name.
func Provider(name string) attribute.KeyValue {
	return attribute.String(AttrProvider, name)
}

// Providers returns an attribute for the provider chain, in execution order.
func Providers(names []string) attribute.KeyValue {
	return attribute.StringSlice(AttrProviders, names)
}

// Result returns an attribute for the outcome of a login attempt.
func Result(result string) attribute.KeyValue {
	return attribute.String(AttrResult, result)
}

// Platform returns an attribute for the platform facts string.
func Platform(facts string) attribute.KeyValue {
	return attribute.String(AttrPlatform, facts)
}

// OS returns an attribute for the OS family.
func OS(family string) attribute.KeyValue {
	return attribute.String(AttrOS, family)
}

// Runtime returns an attribute for the runtime vendor.
func Runtime(vendor string) attribute.KeyValue {
	return attribute.String(AttrRuntime, vendor)
}

// Module returns an attribute for the selected OS-native login module.
func Module(name string) attribute.KeyValue {
	return attribute.String(AttrModule, name)
}

// Principal returns an attribute for the selected principal kind.
func Principal(kind string) attribute.KeyValue {
	return attribute.String(AttrPrincipal, kind)
}

// CacheHit returns an attribute for cache hit/miss.
func CacheHit(hit bool) attribute.KeyValue {
	return attribute.Bool(AttrCacheHit, hit)
}

// AttemptID returns an attribute for a login attempt ID.
func AttemptID(id string) attribute.KeyValue {
	return attribute.String(AttrAttempt, id)
}

// ============================================================================
// Span helpers
// ============================================================================

// StartLoginSpan starts a span for a login attempt under the given mode.
func StartLoginSpan(ctx context.Context, authType, platform string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		AuthType(authType),
		Platform(platform),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanAuthLogin,
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartProviderSpan starts a span for one provider of a login chain.
func StartProviderSpan(ctx context.Context, provider string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{Provider(provider)}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanAuthProvider,
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartAPISpan starts a server span for an HTTP API request.
func StartAPISpan(ctx context.Context, method, route string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanAPIRequest,
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindServer),
	)
}
