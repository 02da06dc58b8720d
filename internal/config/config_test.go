package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.ServiceName != "harmony-match" {
		t.Fatalf("expected default service name, got %q", cfg.ServiceName)
	}
	if cfg.MinBirthYear != 1920 {
		t.Fatalf("expected min birth year 1920, got %d", cfg.MinBirthYear)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Fatalf("expected 1m window, got %v", cfg.RateLimitWindow)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production by default")
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("APP_ENV", "development")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "9090" || cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RateLimitWindow != 30*time.Second {
		t.Fatalf("expected 30s window, got %v", cfg.RateLimitWindow)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development mode")
	}
}

func TestLoadConfig_InvalidNumber(t *testing.T) {
	t.Setenv("MIN_BIRTH_YEAR", "nineteen")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error for non-numeric MIN_BIRTH_YEAR")
	}
}
