package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TADA_THEME", "TADA_LOCALE", "TADA_CURRENCY", "TADA_DEBUG_LOG"} {
		// Setenv restores the original value when the test ends.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Theme != "classic" {
		t.Fatalf("expected theme classic, got %q", cfg.Theme)
	}
	if cfg.Locale != "ja" {
		t.Fatalf("expected locale ja, got %q", cfg.Locale)
	}
	if cfg.Currency != "¥" {
		t.Fatalf("expected currency ¥, got %q", cfg.Currency)
	}
	if cfg.DebugLog != "" {
		t.Fatalf("expected debug log disabled, got %q", cfg.DebugLog)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TADA_THEME", "neon")
	t.Setenv("TADA_LOCALE", "en-US")
	t.Setenv("TADA_CURRENCY", "$")
	t.Setenv("TADA_DEBUG_LOG", "/tmp/tada.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := Config{Theme: "neon", Locale: "en-US", Currency: "$", DebugLog: "/tmp/tada.log"}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}
