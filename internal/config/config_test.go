package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MAGELLAN_PORT", "LOG_LEVEL", "MAGELLAN_API_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != 8760 {
		t.Errorf("expected default port 8760, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.APIToken != "" {
		t.Errorf("expected empty default api token, got %s", cfg.APIToken)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("MAGELLAN_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAGELLAN_API_TOKEN", "magellan-secret-token")

	cfg := Load()

	if cfg.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.APIToken != "magellan-secret-token" {
		t.Errorf("expected custom token, got %s", cfg.APIToken)
	}
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	t.Setenv("MAGELLAN_PORT", "not-a-port")

	if cfg := Load(); cfg.Port != 8760 {
		t.Errorf("expected fallback port 8760, got %d", cfg.Port)
	}
}
