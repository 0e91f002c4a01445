package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != "127.0.0.1:8099" {
		t.Errorf("listen = %q", cfg.Listen)
	}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout())
	}
	if err := cfg.Validate(); err == nil {
		t.Error("defaults validated without backend credentials")
	}
}

func TestLoadPartialConfigNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "backend:\n  base_url: https://schedule.example.com\n  token: abc\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Backend.TimeoutSeconds != 15 {
		t.Errorf("timeout not defaulted: %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("data dir not defaulted: %q", cfg.DataDir)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend: ["), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed config accepted")
	}
}
