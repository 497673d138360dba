package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	Env            string
	DefaultLength  int
	MaxLength      int
	Seed           uint64
	Seeded         bool
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DefaultLength:  getEnvInt("PASSGEN_DEFAULT_LENGTH", 12),
		MaxLength:      getEnvInt("PASSGEN_MAX_LENGTH", 0),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if v := os.Getenv("PASSGEN_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Warn("ignoring invalid PASSGEN_SEED", "value", v, "error", err)
		} else {
			cfg.Seed, cfg.Seeded = seed, true
		}
	}

	if cfg.Env == "production" && cfg.Seeded {
		slog.Error("PASSGEN_SEED must not be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("ignoring invalid number setting", "key", key, "value", v)
		return fallback
	}
	return f
}
