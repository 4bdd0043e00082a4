package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Port)
	}
	if cfg.SessionTTLHours != 24 {
		t.Errorf("Expected default session TTL 24h, got %d", cfg.SessionTTLHours)
	}
	if cfg.SessionSecret == "" {
		t.Error("Expected a generated session secret when none is configured")
	}
	if cfg.MailgunFromName == "" {
		t.Error("Expected a default sender name")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SESSION_SECRET", "configured-secret")
	t.Setenv("SESSION_TTL_HOURS", "72")
	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")

	cfg := Load()

	if cfg.Port != 9999 {
		t.Errorf("Expected port 9999, got %d", cfg.Port)
	}
	if cfg.SessionSecret != "configured-secret" {
		t.Errorf("Expected configured secret, got %q", cfg.SessionSecret)
	}
	if cfg.SessionTTLHours != 72 {
		t.Errorf("Expected TTL 72, got %d", cfg.SessionTTLHours)
	}
	if cfg.MailgunDomain != "mg.example.com" {
		t.Errorf("Expected mailgun domain, got %q", cfg.MailgunDomain)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("Expected fallback port 8080, got %d", cfg.Port)
	}
}

func TestGenerateRandomSecret(t *testing.T) {
	first := generateRandomSecret(32)
	second := generateRandomSecret(32)

	if len(first) != 32 {
		t.Errorf("Expected 32-char secret, got %d", len(first))
	}
	if first == second {
		t.Error("Expected two generated secrets to differ")
	}
}
