package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"agroconsult/internal/database"
)

const (
	defaultAppEnv      = "dev"
	defaultHTTPAddr    = ":8080"
	defaultDatabaseURL = "agroconsult.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret    string
	JWTTTL       time.Duration
	DefaultActor string

	StrictStatusTransitions bool
	StrictProductTypes      bool
	CORSAllowedOrigins      []string

	// DatabaseURLSet is false when DATABASE_URL fell back to the default.
	DatabaseURLSet bool
}

// Load reads .env files (if present) and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultAppEnv)
	v.SetDefault("HTTP_ADDR", defaultHTTPAddr)
	v.SetDefault("DATABASE_URL", defaultDatabaseURL)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL", defaultJWTTTL)
	v.SetDefault("DEFAULT_ACTOR", "")
	v.SetDefault("STRICT_STATUS_TRANSITIONS", false)
	v.SetDefault("STRICT_PRODUCT_TYPES", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	return v
}

// FromViper builds a Config from v. Used directly by tests.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppEnv:                  strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		HTTPAddr:                strings.TrimSpace(v.GetString("HTTP_ADDR")),
		DatabaseURL:             database.SanitizeDSN(v.GetString("DATABASE_URL")),
		JWTSecret:               strings.TrimSpace(v.GetString("JWT_SECRET")),
		DefaultActor:            strings.TrimSpace(v.GetString("DEFAULT_ACTOR")),
		StrictStatusTransitions: v.GetBool("STRICT_STATUS_TRANSITIONS"),
		StrictProductTypes:      v.GetBool("STRICT_PRODUCT_TYPES"),
		CORSAllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}
	cfg.DatabaseURLSet = cfg.DatabaseURL != "" && cfg.DatabaseURL != defaultDatabaseURL
	if cfg.AppEnv == "" {
		cfg.AppEnv = defaultAppEnv
	}

	ttl := strings.TrimSpace(v.GetString("JWT_TTL"))
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL value %q: %w", ttl, err)
	}
	cfg.JWTTTL = d

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	slog.Info("config loaded",
		"app_env", cfg.AppEnv,
		"http_addr", cfg.HTTPAddr,
		"postgres", database.IsPostgres(cfg.DatabaseURL),
		"strict_status_transitions", cfg.StrictStatusTransitions,
		"strict_product_types", cfg.StrictProductTypes,
	)

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}

	if cfg.IsProdLike() {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func (c *Config) IsProdLike() bool {
	env := strings.ToLower(strings.TrimSpace(c.AppEnv))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
