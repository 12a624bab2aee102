package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/apikey"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/cefr"
)

// Config holds all lingo configuration.
type Config struct {
	// Env is "development" or "production". Production skips .env files.
	Env string `yaml:"env"`

	Database    DatabaseConfig    `yaml:"database"`
	HTTP        HTTPConfig        `yaml:"http"`
	Log         LogConfig         `yaml:"log"`
	FrontendKey FrontendKeyConfig `yaml:"frontend_key"`

	// Levels overrides the built-in CEFR bands when non-empty.
	Levels []cefr.Level `yaml:"levels"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	Path string `yaml:"path"` // Empty means store.DefaultDBPath()
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig selects the log encoder.
type LogConfig struct {
	Mode string `yaml:"mode"` // "dev" or "prod"
}

// FrontendKeyConfig configures the rotating key web and mobile clients send.
// An empty Secret disables the check.
type FrontendKeyConfig struct {
	Secret string        `yaml:"secret"`
	Window time.Duration `yaml:"window"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:            ":8080",
			AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Mode: "dev"},
		FrontendKey: FrontendKeyConfig{
			Window: apikey.DefaultWindow,
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then .env files, then LINGO_*
// environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if !cfg.IsProduction() && os.Getenv("LINGO_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from LINGO_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("LINGO_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("LINGO_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("LINGO_HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("LINGO_ALLOWED_ORIGINS"); v != "" {
		c.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("LINGO_LOG_MODE"); v != "" {
		c.Log.Mode = v
	}
	if v := os.Getenv("LINGO_FRONTEND_KEY_SECRET"); v != "" {
		c.FrontendKey.Secret = v
	}
	if v := os.Getenv("LINGO_FRONTEND_KEY_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LINGO_FRONTEND_KEY_WINDOW: %w", err)
		}
		c.FrontendKey.Window = d
	}
	return nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Mode) {
	case "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("unknown log mode %q", c.Log.Mode)
	}
	if c.FrontendKey.Secret != "" && c.FrontendKey.Window < time.Second {
		return fmt.Errorf("frontend key window %s is shorter than 1s", c.FrontendKey.Window)
	}
	if len(c.Levels) > 0 {
		if _, err := cefr.NewScale(c.Levels); err != nil {
			return fmt.Errorf("levels: %w", err)
		}
	}
	return nil
}

// IsProduction reports whether Env names the production environment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production") || strings.EqualFold(c.Env, "prod")
}

// Scale returns the configured CEFR scale, or the default one.
func (c Config) Scale() (*cefr.Scale, error) {
	if len(c.Levels) == 0 {
		return cefr.DefaultScale(), nil
	}
	return cefr.NewScale(c.Levels)
}

// FrontendKeys returns the key generator, or nil when no secret is set.
func (c Config) FrontendKeys() (*apikey.Generator, error) {
	if c.FrontendKey.Secret == "" {
		return nil, nil
	}
	return apikey.New(c.FrontendKey.Secret, c.FrontendKey.Window)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
