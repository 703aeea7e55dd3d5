package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := SaveConfig(GetDefaultConfig(), path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config) { changes <- cfg })
	}()

	updated := GetDefaultConfig()
	updated.Logging.Level = "DEBUG"

	// The watcher may not be registered yet, so keep rewriting until a
	// change is observed.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case cfg := <-changes:
			// A truncated file can be observed mid-write; wait for the
			// complete one.
			if cfg.Logging.Level != "DEBUG" {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned error: %v", err)
			}
			return
		case <-ticker.C:
			if err := SaveConfig(updated, path); err != nil {
				t.Fatalf("SaveConfig failed: %v", err)
			}
		case <-deadline:
			t.Fatal("Timed out waiting for config reload")
		}
	}
}

func TestWatch_SkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := SaveConfig(GetDefaultConfig(), path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	called := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(*Config) { called <- struct{}{} })
	}()

	time.Sleep(100 * time.Millisecond)
	// Replace by rename so the watcher never sees a partially written file.
	tmp := filepath.Join(dir, "config.yaml.tmp")
	invalid := []byte("security:\n  authentication_type: LDAP\n")
	if err := os.WriteFile(tmp, invalid, 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if err := <-done; err != nil {
		t.Errorf("Watch returned error: %v", err)
	}
	if len(called) != 0 {
		t.Errorf("Expected no reload for invalid config, got %d", len(called))
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")
	if err := Watch(context.Background(), path, func(*Config) {}); err == nil {
		t.Error("Expected error watching a missing directory")
	}
}
