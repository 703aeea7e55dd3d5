package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordSpans routes spans to an in-memory recorder for the test.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	useTracer(tp.Tracer("test"), true)
	t.Cleanup(func() {
		useTracer(noop.NewTracerProvider().Tracer(instrumentationName), false)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "dittologin", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.ServiceVersion)
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 1.0, cfg.SampleRate)
}

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()

	shutdown, err := Init(ctx, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(ctx))

	assert.False(t, IsEnabled())

	// Spans from the no-op tracer carry no IDs.
	spanCtx, span := StartSpan(ctx, "test.operation")
	defer span.End()
	assert.Equal(t, "", TraceID(spanCtx))
	assert.Equal(t, "", SpanID(spanCtx))
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0.0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		desc := sampler(tt.rate).Description()
		assert.Contains(t, desc, "ParentBased{root:"+tt.want)
	}
}

func TestSpanIDsFromRecordedSpan(t *testing.T) {
	recordSpans(t)
	assert.True(t, IsEnabled())

	ctx, span := StartSpan(context.Background(), "test.operation")
	defer span.End()

	sc := trace.SpanContextFromContext(ctx)
	assert.Equal(t, sc.TraceID().String(), TraceID(ctx))
	assert.Equal(t, sc.SpanID().String(), SpanID(ctx))
	assert.Len(t, TraceID(ctx), 32)
	assert.Len(t, SpanID(ctx), 16)
}

func TestRecordError(t *testing.T) {
	sr := recordSpans(t)

	ctx, span := StartSpan(context.Background(), "failing")
	RecordError(ctx, nil)
	RecordError(ctx, errors.New("no identity"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "no identity", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestRecordErrorNilLeavesStatus(t *testing.T) {
	sr := recordSpans(t)

	ctx, span := StartSpan(context.Background(), "ok")
	RecordError(ctx, nil)
	span.End()

	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, codes.Unset, sr.Ended()[0].Status().Code)
}

func TestAddEventAndSetAttributes(t *testing.T) {
	sr := recordSpans(t)

	ctx, span := StartSpan(context.Background(), "login")
	AddEvent(ctx, "cache.miss", CacheHit(false))
	SetAttributes(ctx, Username("alice"), Result("success"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "alice", attrs[AttrUsername].AsString())
	assert.Equal(t, "success", attrs[AttrResult].AsString())
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "cache.miss", ended[0].Events()[0].Name)
}

func TestStartLoginSpan(t *testing.T) {
	sr := recordSpans(t)

	ctx, login := StartLoginSpan(context.Background(), "SIMPLE", "unix/64-bit/standard", AttemptID("a1"))
	_, provider := StartProviderSpan(ctx, "os", Module("unix"))
	provider.End()
	login.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)

	p, l := ended[0], ended[1]
	assert.Equal(t, SpanAuthProvider, p.Name())
	assert.Equal(t, SpanAuthLogin, l.Name())
	assert.Equal(t, l.SpanContext().SpanID(), p.Parent().SpanID())
	assert.Equal(t, trace.SpanKindInternal, l.SpanKind())

	la := attrMap(l.Attributes())
	assert.Equal(t, "SIMPLE", la[AttrAuthType].AsString())
	assert.Equal(t, "unix/64-bit/standard", la[AttrPlatform].AsString())
	assert.Equal(t, "a1", la[AttrAttempt].AsString())

	pa := attrMap(p.Attributes())
	assert.Equal(t, "os", pa[AttrProvider].AsString())
	assert.Equal(t, "unix", pa[AttrModule].AsString())
}

func TestStartAPISpan(t *testing.T) {
	sr := recordSpans(t)

	_, span := StartAPISpan(context.Background(), "GET", "/health/identity", ClientIP("127.0.0.1"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, SpanAPIRequest, ended[0].Name())
	assert.Equal(t, trace.SpanKindServer, ended[0].SpanKind())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "GET", attrs["http.request.method"].AsString())
	assert.Equal(t, "/health/identity", attrs["http.route"].AsString())
	assert.Equal(t, "127.0.0.1", attrs[AttrClientIP].AsString())
}

func TestAttributeHelpers(t *testing.T) {
	t.Run("ClientIP", func(t *testing.T) {
		attr := ClientIP("192.168.1.100")
		assert.Equal(t, AttrClientIP, string(attr.Key))
		assert.Equal(t, "192.168.1.100", attr.Value.AsString())
	})

	t.Run("ClientAddr", func(t *testing.T) {
		attr := ClientAddr("192.168.1.100:12345")
		assert.Equal(t, AttrClientAddr, string(attr.Key))
		assert.Equal(t, "192.168.1.100:12345", attr.Value.AsString())
	})

	t.Run("Username", func(t *testing.T) {
		attr := Username("alice")
		assert.Equal(t, AttrUsername, string(attr.Key))
		assert.Equal(t, "alice", attr.Value.AsString())
	})

	t.Run("AuthType", func(t *testing.T) {
		attr := AuthType("SIMPLE")
		assert.Equal(t, AttrAuthType, string(attr.Key))
		assert.Equal(t, "SIMPLE", attr.Value.AsString())
	})

	t.Run("Providers", func(t *testing.T) {
		attr := Providers([]string{"unix", "local"})
		assert.Equal(t, AttrProviders, string(attr.Key))
		assert.Equal(t, []string{"unix", "local"}, attr.Value.AsStringSlice())
	})

	t.Run("Platform", func(t *testing.T) {
		attr := Platform("windows/64-bit/standard")
		assert.Equal(t, AttrPlatform, string(attr.Key))
		assert.Equal(t, "windows/64-bit/standard", attr.Value.AsString())
	})

	t.Run("Module", func(t *testing.T) {
		attr := Module("nt")
		assert.Equal(t, AttrModule, string(attr.Key))
		assert.Equal(t, "nt", attr.Value.AsString())
	})

	t.Run("CacheHit", func(t *testing.T) {
		attr := CacheHit(true)
		assert.Equal(t, AttrCacheHit, string(attr.Key))
		assert.True(t, attr.Value.AsBool())
	})
}
