package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// durationSeconds parses env values as time.Duration: "5s", "2m", or a
// bare number of seconds (e.g. "5" -> 5s).
type durationSeconds time.Duration

// SetValue implements cleanenv.Setter.
func (d *durationSeconds) SetValue(s string) error {
	v, err := parseDuration(s)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	// Bare number first, so "5" never reaches ParseDuration.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 5s, 2m or a number of seconds: %w", err)
	}
	return v, nil
}

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	DB   DBConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	Version string `env:"VERSION" env-default:"dev"`
}

// IsProd reports whether degraded-mode fallback must be suppressed.
func (a AppConfig) IsProd() bool {
	return a.Env == "prod" || a.Env == "production"
}

type HTTPConfig struct {
	Port string `env:"HTTP_PORT" env-default:"8080"`

	// "10s", "5m" or a bare number of seconds.
	ReadTimeout  durationSeconds `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout durationSeconds `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  durationSeconds `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type DBConfig struct {
	// URL is the production endpoint, DevURL the development one. They
	// must never point at the same database; Load refuses to start if
	// they match.
	URL    string `env:"SURREALDB_URL" env-default:""`
	DevURL string `env:"SURREALDB_DEV_URL" env-default:"ws://localhost:8000/rpc"`

	Namespace string `env:"SURREALDB_NS" env-default:"studio"`
	Database  string `env:"SURREALDB_DB" env-default:"board"`
	User      string `env:"SURREALDB_USER" env-default:""`
	Pass      string `env:"SURREALDB_PASS" env-default:""`

	ConnectTimeout durationSeconds `env:"SURREALDB_CONNECT_TIMEOUT" env-default:"5s"`

	// Endpoint is resolved from URL/DevURL by Load according to APP_ENV.
	Endpoint string `env:"-"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if err := resolve(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolve(cfg *Config) error {
	if cfg.DB.URL != "" && cfg.DB.URL == cfg.DB.DevURL {
		return fmt.Errorf("SURREALDB_URL and SURREALDB_DEV_URL resolve to the same database")
	}
	if cfg.App.IsProd() {
		if cfg.DB.URL == "" {
			return fmt.Errorf("SURREALDB_URL is required when APP_ENV=%s", cfg.App.Env)
		}
		cfg.DB.Endpoint = cfg.DB.URL
		return nil
	}
	if cfg.DB.DevURL == "" {
		return fmt.Errorf("SURREALDB_DEV_URL is required outside production")
	}
	cfg.DB.Endpoint = cfg.DB.DevURL
	return nil
}
