package config

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	Port      int
	DBURL     string
	JWTSecret string

	CORSAllowedOrigins []string
	OTLPEndpoint       string

	// Optional bootstrap user created at startup when both email and
	// password are set.
	SeedEmail    string
	SeedPassword string
	SeedName     string
}

func Load() (Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Env:                getEnv("APP_ENV", "dev"),
		Port:               getEnvInt("PORT", 3000),
		DBURL:              buildDBURL(),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSAllowedOrigins: splitEnv("CORS_ALLOWED_ORIGINS"),
		OTLPEndpoint:       getEnv("OTLP_ENDPOINT", ""),
		SeedEmail:          getEnv("SEED_EMAIL", ""),
		SeedPassword:       getEnv("SEED_PASSWORD", ""),
		SeedName:           getEnv("SEED_NAME", "Admin"),
	}

	// Fail fast on a missing signing secret instead of signing tokens with
	// an empty key.
	if cfg.JWTSecret == "" {
		if cfg.Env != "dev" {
			return Config{}, errors.New("JWT_SECRET must be set")
		}

		cfg.JWTSecret = "dev-insecure-secret"
	}

	return cfg, nil
}

func buildDBURL() string {
	if url := getEnv("DATABASE_URL", ""); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "userhub")
	pass := getEnv("DB_PASSWORD", "userhub")
	name := getEnv("DB_NAME", "userhub")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			return fallback
		}

		return num
	}
	return fallback
}

func splitEnv(key string) []string {
	raw := os.Getenv(key)

	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)

		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
