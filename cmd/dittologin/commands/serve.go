package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/marmos91/dittologin/internal/logger"
	"github.com/marmos91/dittologin/internal/telemetry"
	"github.com/marmos91/dittologin/pkg/api"
	"github.com/marmos91/dittologin/pkg/auth/login"
	"github.com/marmos91/dittologin/pkg/auth/platform"
	"github.com/marmos91/dittologin/pkg/config"
)

var pidFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Resolve the login user and serve the HTTP API",
	Long: `Resolve the login user of this process, then serve the health,
identity and metrics endpoints until interrupted.

The login user is resolved once at startup. The command fails immediately
when it cannot be resolved.

Examples:
  # Serve with default config location
  dittologin serve

  # Serve with custom config file
  dittologin serve --config /etc/dittologin/config.yaml

  # Serve with environment variable overrides
  DITTOLOGIN_LOGGING_LEVEL=DEBUG dittologin serve`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&pidFile, "pid-file", "", "Path to PID file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := InitLogger(cfg); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	facts := platform.Current()

	telemetryCfg := telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "dittologin",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
		ResourceAttributes: []attribute.KeyValue{
			telemetry.Platform(facts.String()),
			telemetry.OS(facts.OS.String()),
			telemetry.Runtime(facts.Runtime.String()),
			telemetry.Module(facts.Module().String()),
			telemetry.Principal(facts.PrincipalKind().String()),
		},
	}
	telemetryShutdown, err := telemetry.Init(ctx, telemetryCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown error", logger.KeyError, err)
		}
	}()

	logger.Info("Log level", "level", cfg.Logging.Level, "format", cfg.Logging.Format)
	logger.Info("Configuration loaded", logger.KeyConfigFile, getConfigSource())
	if telemetry.IsEnabled() {
		logger.Info("Telemetry enabled", "endpoint", cfg.Telemetry.Endpoint, "sample_rate", cfg.Telemetry.SampleRate)
	} else {
		logger.Info("Telemetry disabled")
	}

	var opts []login.Option
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, login.WithMetrics(login.NewMetrics(reg)))
		gatherer = reg
		logger.Info("Metrics enabled")
	} else {
		logger.Info("Metrics collection disabled")
	}

	opts = append(opts, login.WithPlatform(facts))
	manager, err := login.NewManagerFromConfig(cfg, opts...)
	if err != nil {
		return err
	}

	user, err := manager.LoginUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve login user: %w", err)
	}
	logger.Info("Login user resolved",
		logger.KeyUsername, user.Name(),
		logger.KeyAuth, manager.AuthType().String(),
		logger.KeyPlatform, manager.Platform().String())

	if !cfg.API.IsEnabled() {
		logger.Info("API server disabled, nothing to serve")
		return nil
	}

	if path := configFileInUse(); path != "" {
		go watchConfig(ctx, path, cfg)
	}

	apiServer := api.NewServer(cfg.API, manager, gatherer)
	logger.Info("API server configured", logger.KeyAddress, apiServer.Addr())

	if pidFile != "" {
		if err := os.WriteFile(pidFile, []byte(fmt.Sprintf("%d", os.Getpid())), 0644); err != nil {
			return fmt.Errorf("failed to write PID file: %w", err)
		}
		defer func() { _ = os.Remove(pidFile) }()
	}

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- apiServer.Start(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Server is running. Press Ctrl+C to stop.")

	select {
	case <-sigChan:
		signal.Stop(sigChan)
		logger.Info("Shutdown signal received, initiating graceful shutdown")
		cancel()

		select {
		case err := <-serverDone:
			if err != nil {
				return fmt.Errorf("server shutdown error: %w", err)
			}
			logger.Info("Server stopped gracefully")
		case <-time.After(cfg.ShutdownTimeout):
			return fmt.Errorf("server did not stop within %s", cfg.ShutdownTimeout)
		}

	case err := <-serverDone:
		signal.Stop(sigChan)
		if err != nil {
			return err
		}
		logger.Info("Server stopped")
	}

	return nil
}

// watchConfig applies logging changes from the config file while serving.
// The security section is read once at startup; changes to it only produce
// a warning.
func watchConfig(ctx context.Context, path string, started *config.Config) {
	err := config.Watch(ctx, path, func(cfg *config.Config) {
		logger.SetLevel(cfg.Logging.Level)
		logger.SetFormat(cfg.Logging.Format)
		logger.Info("Configuration reloaded",
			logger.KeyConfigFile, path,
			"level", cfg.Logging.Level,
			"format", cfg.Logging.Format)

		if cfg.Security != started.Security {
			logger.Warn("Security settings changed; restart to apply",
				logger.KeyConfigFile, path,
				logger.KeyAuth, cfg.Security.AuthenticationType)
		}
	})
	if err != nil {
		logger.Warn("Config watching disabled", logger.KeyError, err)
	}
}
