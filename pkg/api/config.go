package api

import (
	"net"
	"strconv"
	"time"
)

// APIConfig configures the HTTP API server that exposes the login user.
type APIConfig struct {
	// Enabled controls whether serve starts the API server. A nil value
	// means enabled.
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`

	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" validate:"omitempty,hostname_rfc1123|ip" yaml:"host"`

	// Port is the HTTP port. Default: 8080
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`

	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`

	// RequestTimeout bounds each request, including a login triggered by
	// the identity probe. Default: 30s
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
}

// IsEnabled returns whether the API server is enabled.
func (c *APIConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Addr returns the host:port the server listens on.
func (c *APIConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ApplyDefaults fills in zero values. It is idempotent.
func (c *APIConfig) ApplyDefaults() {
	if c.Port <= 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
}
