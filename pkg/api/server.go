package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/marmos91/dittologin/internal/logger"
	"github.com/marmos91/dittologin/pkg/api/handlers"
)

// shutdownGrace bounds the graceful shutdown Start performs on cancellation.
const shutdownGrace = 5 * time.Second

// Server serves the login API over HTTP.
//
// Endpoints:
//   - GET /health: Liveness probe
//   - GET /health/identity: Login user probe
//   - GET /metrics: Prometheus metrics (when a gatherer is configured)
type Server struct {
	server *http.Server
	config APIConfig

	mu    sync.Mutex
	bound net.Addr

	shutdownOnce sync.Once
}

// NewServer creates a stopped server. Defaults are applied to config so a
// server built directly (in tests, for instance) behaves like one built from
// a loaded configuration. identity may be nil; a nil gatherer disables
// /metrics.
func NewServer(config APIConfig, identity handlers.IdentitySource, gatherer prometheus.Gatherer) *Server {
	config.ApplyDefaults()

	return &Server{
		config: config,
		server: &http.Server{
			Addr:         config.Addr(),
			Handler:      newRouter(identity, gatherer, config.RequestTimeout),
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
			IdleTimeout:  config.IdleTimeout,
		},
	}
}

// Start listens on the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("API server failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.bound = ln.Addr()
	s.mu.Unlock()

	logger.Info("API server listening", logger.KeyAddress, ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("API server shutdown signal received")
		// ctx is already done; shutdown needs a fresh deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("API server failed: %w", err)
	}
}

// Stop shuts the server down. Only the first call has any effect.
func (s *Server) Stop(ctx context.Context) error {
	var stopErr error
	s.shutdownOnce.Do(func() {
		if err := s.server.Shutdown(ctx); err != nil {
			stopErr = fmt.Errorf("API server shutdown error: %w", err)
			logger.Error("API server shutdown error", logger.KeyError, err)
			return
		}
		logger.Info("API server stopped gracefully")
	})
	return stopErr
}

// Addr returns the address the server is bound to, or the configured
// address before it starts listening.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound != nil {
		return s.bound.String()
	}
	return s.server.Addr
}

// Port returns the configured TCP port.
func (s *Server) Port() int {
	return s.config.Port
}
