package config_test

import (
	"testing"

	"github.com/userhub/userhub/internal/config"
)

func TestLoadFailsFastWithoutSecretOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()

	if err == nil {
		t.Fatalf("expected fail-fast error for missing JWT_SECRET in prod")
	}
}

func TestLoadFallsBackToDevSecret(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()

	if err != nil {
		t.Fatalf("dev load should not fail: %v", err)
	}

	if cfg.JWTSecret == "" {
		t.Fatalf("dev config should carry a fallback secret")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/userhub?sslmode=disable")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()

	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != 8081 {
		t.Fatalf("port not read: %d", cfg.Port)
	}

	if cfg.DBURL != "postgres://u:p@db:5432/userhub?sslmode=disable" {
		t.Fatalf("DATABASE_URL should win over DB_* parts, got %q", cfg.DBURL)
	}

	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins not split/trimmed: %#v", cfg.CORSAllowedOrigins)
	}
}
