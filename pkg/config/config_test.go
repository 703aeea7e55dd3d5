package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_DefaultConfig(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: "INFO"

security:
  authentication_type: simple

api:
  port: 8080
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify defaults were applied
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected default shutdown_timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected API port 8080, got %d", cfg.API.Port)
	}
	if cfg.Security.AuthenticationType != "SIMPLE" {
		t.Errorf("Expected authentication type normalized to 'SIMPLE', got %q", cfg.Security.AuthenticationType)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Loading with no config file returns a valid default config.
	tmpDir := t.TempDir()
	nonExistentPath := filepath.Join(tmpDir, "nonexistent.yaml")

	cfg, err := Load(nonExistentPath)
	if err != nil {
		t.Fatalf("Expected no error when loading default config, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected default config to be returned")
	}

	if cfg.Security.AuthenticationType != DefaultAuthenticationType {
		t.Errorf("Expected default authentication type %q, got %q", DefaultAuthenticationType, cfg.Security.AuthenticationType)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected default API port 8080, got %d", cfg.API.Port)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	configContent := `
logging:
  level: INFO
  invalid yaml here [[[
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Expected error with invalid YAML, got nil")
	}
}

func TestLoad_InvalidAuthenticationType(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
security:
  authentication_type: LDAP
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Expected validation error for unknown authentication type")
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[logging]
level = "WARN"
format = "json"

[security]
authentication_type = "KERBEROS"
login_username = "svc-ditto"

[api]
port = 8181
read_timeout = "5s"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected level 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format 'json', got %q", cfg.Logging.Format)
	}
	if cfg.Security.AuthenticationType != "KERBEROS" {
		t.Errorf("Expected authentication type 'KERBEROS', got %q", cfg.Security.AuthenticationType)
	}
	if cfg.Security.LoginUsername != "svc-ditto" {
		t.Errorf("Expected login username 'svc-ditto', got %q", cfg.Security.LoginUsername)
	}
	if cfg.API.Port != 8181 {
		t.Errorf("Expected API port 8181, got %d", cfg.API.Port)
	}
	if cfg.API.ReadTimeout != 5*time.Second {
		t.Errorf("Expected read timeout 5s, got %v", cfg.API.ReadTimeout)
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default log format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default log output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected default shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected default API port 8080, got %d", cfg.API.Port)
	}
	if !cfg.API.IsEnabled() {
		t.Error("Expected API to be enabled by default")
	}
	if cfg.Security.AuthenticationType != "SIMPLE" {
		t.Errorf("Expected default authentication type 'SIMPLE', got %q", cfg.Security.AuthenticationType)
	}
	if cfg.Security.LoginUsername != "" {
		t.Errorf("Expected no default login username, got %q", cfg.Security.LoginUsername)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()

	if !filepath.IsAbs(path) {
		t.Errorf("Expected absolute path, got %q", path)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Expected filename 'config.yaml', got %q", filepath.Base(path))
	}
}

func TestGetConfigDir(t *testing.T) {
	dir := GetConfigDir()

	if filepath.Base(dir) != "dittologin" {
		t.Errorf("Expected directory name 'dittologin', got %q", filepath.Base(dir))
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("DITTOLOGIN_LOGGING_LEVEL", "ERROR")
	t.Setenv("DITTOLOGIN_SECURITY_AUTHENTICATION_TYPE", "kerberos")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: "INFO"

security:
  authentication_type: SIMPLE
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify environment variables override config file
	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected level 'ERROR' from env var, got %q", cfg.Logging.Level)
	}
	if cfg.Security.AuthenticationType != "KERBEROS" {
		t.Errorf("Expected authentication type 'KERBEROS' from env var, got %q", cfg.Security.AuthenticationType)
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	_, err := MustLoad(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Security.LoginUsername = "svc-ditto"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}
	if loaded.Security.LoginUsername != "svc-ditto" {
		t.Errorf("Expected login username 'svc-ditto', got %q", loaded.Security.LoginUsername)
	}
}

func TestLoad_APISection(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
api:
  enabled: false
  host: 127.0.0.1
  port: 9091
  request_timeout: 2s
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.API.IsEnabled() {
		t.Error("Expected API to be disabled")
	}
	if got := cfg.API.Addr(); got != "127.0.0.1:9091" {
		t.Errorf("Expected address 127.0.0.1:9091, got %q", got)
	}
	if cfg.API.RequestTimeout != 2*time.Second {
		t.Errorf("Expected request timeout 2s, got %v", cfg.API.RequestTimeout)
	}
	if cfg.API.IdleTimeout != 60*time.Second {
		t.Errorf("Expected default idle timeout 60s, got %v", cfg.API.IdleTimeout)
	}
}

func TestLoad_EnvironmentWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DITTOLOGIN_SECURITY_LOGIN_USERNAME", "svc-ditto")
	t.Setenv("DITTOLOGIN_API_HOST", "127.0.0.1")
	t.Setenv("DITTOLOGIN_API_ENABLED", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Security.LoginUsername != "svc-ditto" {
		t.Errorf("Expected login username from env, got %q", cfg.Security.LoginUsername)
	}
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("Expected API host from env, got %q", cfg.API.Host)
	}
	if cfg.API.IsEnabled() {
		t.Error("Expected API disabled from env")
	}
}

func TestMustLoad_NotFoundError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := MustLoad(path)
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "config init --config "+path) {
		t.Errorf("Expected init hint in error, got %v", err)
	}
}
