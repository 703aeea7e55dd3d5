package commands

import (
	"fmt"
	"strings"

	"github.com/marmos91/dittologin/internal/logger"
	"github.com/marmos91/dittologin/pkg/config"
)

// InitLogger configures the global logger from cfg.Logging.
func InitLogger(cfg *config.Config) error {
	return initLogger(cfg.Logging, false)
}

// initReportLogger is InitLogger for commands whose stdout carries a report:
// stdout logging is redirected to stderr so json and yaml stay parseable.
func initReportLogger(cfg *config.Config) error {
	return initLogger(cfg.Logging, true)
}

func initLogger(lc config.LoggingConfig, keepStdoutClean bool) error {
	out := lc.Output
	if keepStdoutClean && strings.EqualFold(out, "stdout") {
		out = "stderr"
	}
	err := logger.Init(logger.Config{Level: lc.Level, Format: lc.Format, Output: out})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadConfig loads --config when given. Without it a missing default file
// is fine: defaults and DITTOLOGIN_* variables apply.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.MustLoad(cfgFile)
	}
	return config.Load("")
}

// configFileInUse returns the file loadConfig reads, or "" when running on
// defaults alone.
func configFileInUse() string {
	if cfgFile != "" {
		return cfgFile
	}
	if config.DefaultConfigExists() {
		return config.GetDefaultConfigPath()
	}
	return ""
}

// getConfigSource describes where the configuration came from, for logs.
func getConfigSource() string {
	if path := configFileInUse(); path != "" {
		return path
	}
	return "defaults"
}
