package config

import (
	"time"

	"github.com/marmos91/dittologin/pkg/api"
)

// Config is the dittologin configuration. Values come from, in order of
// precedence, DITTOLOGIN_* environment variables, the configuration file
// (YAML or TOML) and defaults.
//
// Security is read once when the login manager is built. Logging may be
// reapplied while serve runs; see Watch.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`
	Metrics   MetricsConfig   `mapstructure:"metrics" yaml:"metrics"`
	API       api.APIConfig   `mapstructure:"api" yaml:"api"`
	Security  SecurityConfig  `mapstructure:"security" yaml:"security"`

	// ShutdownTimeout bounds how long serve waits for the API server to stop.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0" yaml:"shutdown_timeout"`
}

// SecurityConfig controls login user resolution.
type SecurityConfig struct {
	// AuthenticationType is the active authentication mode.
	// Valid values: NOSASL, SIMPLE, CUSTOM, KERBEROS (case-insensitive, normalized to uppercase)
	// Only SIMPLE can resolve a login user; the others fail at login time.
	// Default: SIMPLE
	AuthenticationType string `mapstructure:"authentication_type" validate:"required,oneof=NOSASL SIMPLE CUSTOM KERBEROS nosasl simple custom kerberos" yaml:"authentication_type"`

	// LoginUsername, when set, is asserted as the login user instead of the
	// OS account name. The OS account must still resolve.
	LoginUsername string `mapstructure:"login_username" validate:"omitempty,max=256" yaml:"login_username"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is DEBUG, INFO, WARN or ERROR, in any case.
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format is text or json.
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is stdout, stderr or a file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// TelemetryConfig controls export of login and API spans over OTLP gRPC.
// Tracing is opt-in.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Endpoint is the collector host:port. Default: localhost:4317
	Endpoint string `mapstructure:"endpoint" validate:"required_if=Enabled true" yaml:"endpoint"`

	// Insecure disables TLS to the collector.
	Insecure bool `mapstructure:"insecure" yaml:"insecure"`

	// SampleRate is the fraction of root spans kept, 0 to 1. Default: 1
	SampleRate float64 `mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1" yaml:"sample_rate"`
}

// MetricsConfig toggles the login metrics and the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

