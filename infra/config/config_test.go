package config

import (
	"testing"
	"time"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	t.Setenv("EMOTERM_SERVER", "http://detector.local:5000/")
	t.Setenv("EMOTERM_TIMEOUT", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != "http://detector.local:5000" {
		t.Fatalf("server URL must be normalized: %q", cfg.ServerURL)
	}
	if cfg.Timeout != 8*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout)
	}
}

func TestLoad_DefaultsToLocalServerAndNoTimeout(t *testing.T) {
	t.Setenv("EMOTERM_SERVER", "")
	t.Setenv("EMOTERM_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != "http://localhost:5000" {
		t.Fatalf("unexpected default server: %q", cfg.ServerURL)
	}
	if cfg.Timeout != 0 {
		t.Fatalf("timeout must default to disabled, got %v", cfg.Timeout)
	}
}

func TestLoad_RejectsRelativeURL(t *testing.T) {
	t.Setenv("EMOTERM_SERVER", "localhost:5000")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-absolute server URL")
	}
}

func TestLoad_RejectsBadTimeout(t *testing.T) {
	for _, raw := range []string{"-1", "soon", "1.5"} {
		t.Setenv("EMOTERM_SERVER", "")
		t.Setenv("EMOTERM_TIMEOUT", raw)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for EMOTERM_TIMEOUT=%q", raw)
		}
	}
}
