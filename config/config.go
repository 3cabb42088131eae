// Package config loads runtime settings from the environment (optionally
// seeded from a .env file) and owns the process logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultSessionCapacity = 1024
	defaultSessionCookie   = "hub_session"
)

// Config is the full set of runtime settings.
type Config struct {
	Env             string // "dev" or "prod"
	CatalogFile     string // empty means the embedded catalog
	SessionCapacity int
	SessionCookie   string
	SecureCookies   bool
	LogLevel        string
}

// IsProd reports whether the app runs with production settings.
func (c Config) IsProd() bool { return c.Env == "prod" }

// Load reads .env from the working directory when present, then builds a
// Config from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can supply their own
// environment.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:             strings.ToLower(strings.TrimSpace(getenv("APP_ENV"))),
		CatalogFile:     strings.TrimSpace(getenv("CATALOG_FILE")),
		SessionCapacity: defaultSessionCapacity,
		SessionCookie:   defaultSessionCookie,
		LogLevel:        "info",
	}
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Env != "dev" && cfg.Env != "prod" {
		return Config{}, fmt.Errorf("APP_ENV: unknown environment %q", cfg.Env)
	}

	if v := strings.TrimSpace(getenv("SESSION_CAPACITY")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("SESSION_CAPACITY: want a positive integer, got %q", v)
		}
		cfg.SessionCapacity = n
	}

	if v := strings.TrimSpace(getenv("SESSION_COOKIE")); v != "" {
		cfg.SessionCookie = v
	}

	cfg.SecureCookies = cfg.IsProd()
	if v := strings.TrimSpace(getenv("SECURE_COOKIES")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SECURE_COOKIES: %w", err)
		}
		cfg.SecureCookies = b
	}

	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}
