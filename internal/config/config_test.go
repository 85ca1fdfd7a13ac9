package config

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("ENC_KEY", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("AUTH_RATE_LIMIT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("TOKEN_FILE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.DatabaseDSN != "file:boltpass.db?cache=shared" {
		t.Fatalf("DatabaseDSN default expected sqlite file, got %q", cfg.DatabaseDSN)
	}
	if cfg.EncKey != "" {
		t.Fatalf("EncKey must stay empty (degraded mode), got %q", cfg.EncKey)
	}
	if cfg.BaseURL != "localhost:3000" {
		t.Fatalf("BaseURL default expected 'localhost:3000', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:3000" {
		t.Fatalf("ServerURL default expected 'http://localhost:3000', got %q", cfg.ServerURL)
	}
	if cfg.AuthRateLimit != 20 {
		t.Fatalf("AuthRateLimit default expected 20, got %d", cfg.AuthRateLimit)
	}
	if cfg.TokenTTL != 7*24*time.Hour {
		t.Fatalf("TokenTTL default expected 168h, got %s", cfg.TokenTTL)
	}
	if got := cfg.AllowedOrigins(); len(got) != 1 || got[0] != "*" {
		t.Fatalf("AllowedOrigins default expected [*], got %v", got)
	}
	if cfg.TokenFile == "" {
		t.Fatalf("client defaults must be non-empty: TokenFile=%q", cfg.TokenFile)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("AUTH_RATE_LIMIT", "5")
	t.Setenv("TOKEN_TTL", "1h")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.AuthRateLimit != 5 {
		t.Fatalf("AuthRateLimit expected 5, got %d", cfg.AuthRateLimit)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("TokenTTL expected 1h, got %s", cfg.TokenTTL)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:3000
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:3000" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:3000', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:3000") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestConfig_AllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://a.example , ,https://b.example"}
	got := cfg.AllowedOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", got)
	}
}

func TestNewConfig_FlagOverridesEnv(t *testing.T) {
	t.Setenv("AUTH_SECRET", "from-env")
	t.Setenv("AUTH_RATE_LIMIT", "7")
	t.Setenv("BASE_URL", "env-host:4000")

	oldArgs := os.Args
	os.Args = []string{oldArgs[0], "-auth-secret", "from-flag", "-auth-rate", "3"}
	t.Cleanup(func() { os.Args = oldArgs })

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "from-flag" {
		t.Fatalf("flag must override env AUTH_SECRET, got %q", cfg.AuthSecret)
	}
	if cfg.AuthRateLimit != 3 {
		t.Fatalf("flag must override env AUTH_RATE_LIMIT, got %d", cfg.AuthRateLimit)
	}
	// без флага остаётся значение из env
	if cfg.BaseURL != "env-host:4000" {
		t.Fatalf("env BASE_URL expected without flag, got %q", cfg.BaseURL)
	}
}
