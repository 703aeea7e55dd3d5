package config

import (
	"strings"
	"time"
)

// DefaultAuthenticationType is the authentication mode used when none is configured.
const DefaultAuthenticationType = "SIMPLE"

const (
	defaultLogLevel        = "INFO"
	defaultLogFormat       = "text"
	defaultLogOutput       = "stdout"
	defaultOTLPEndpoint    = "localhost:4317"
	defaultSampleRate      = 1.0
	defaultShutdownTimeout = 30 * time.Second
)

// ApplyDefaults fills zero-valued fields and normalizes the log level and
// authentication mode to upper case. Explicit values are kept, and applying
// defaults twice changes nothing.
func ApplyDefaults(cfg *Config) {
	setIfEmpty(&cfg.Logging.Level, defaultLogLevel)
	setIfEmpty(&cfg.Logging.Format, defaultLogFormat)
	setIfEmpty(&cfg.Logging.Output, defaultLogOutput)
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)

	// Tracing stays opt-in; only its connection settings get defaults.
	setIfEmpty(&cfg.Telemetry.Endpoint, defaultOTLPEndpoint)
	if cfg.Telemetry.SampleRate == 0 {
		cfg.Telemetry.SampleRate = defaultSampleRate
	}

	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	cfg.API.ApplyDefaults()

	sec := &cfg.Security
	sec.AuthenticationType = strings.ToUpper(strings.TrimSpace(sec.AuthenticationType))
	setIfEmpty(&sec.AuthenticationType, DefaultAuthenticationType)
	sec.LoginUsername = strings.TrimSpace(sec.LoginUsername)
}

func setIfEmpty(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// GetDefaultConfig returns a Config holding only defaults. config init
// writes it, and Load seeds every key from it.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
