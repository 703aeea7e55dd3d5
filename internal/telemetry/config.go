package telemetry

import "go.opentelemetry.io/otel/attribute"

// Config holds OpenTelemetry configuration
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string

	// Endpoint is the OTLP gRPC collector address (host:port)
	Endpoint string

	// Insecure disables TLS towards the collector
	Insecure bool

	// SampleRate is the root span sampling rate (0.0 to 1.0). Child spans
	// follow their parent.
	SampleRate float64

	// ResourceAttributes are added to the service resource, e.g. the
	// platform facts and login module of the process.
	ResourceAttributes []attribute.KeyValue
}

// DefaultConfig returns a disabled configuration pointing at a local
// collector.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		ServiceName:    "dittologin",
		ServiceVersion: "dev",
		Endpoint:       "localhost:4317",
		Insecure:       true,
		SampleRate:     1.0,
	}
}
