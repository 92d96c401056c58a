// Package config loads quest settings from QUEST_* environment variables
package config

import (
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/solution-quest/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "QUEST_"

// LogLevels lists the accepted log levels
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the process settings
type Config struct {
	// ContentDir reads <dataset>.csv files from a directory instead of the
	// embedded content
	ContentDir string `env:"CONTENT_DIR"`
	// ContentDB reads content from a SQLite database written by `quest import`
	ContentDB string `env:"CONTENT_DB"`
	// RedisAddr enables the shared second-tier content cache
	RedisAddr string        `env:"REDIS_ADDR"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	// Seed makes draws reproducible; 0 picks a random seed
	Seed uint64 `env:"SEED" envDefault:"0"`
}

// Load reads an optional dotenv file and then parses the environment.
// An empty path tries .env and ignores it when missing.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load env file").
				WithMeta("path", dotenvPath)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load .env")
	}

	return Parse(nil)
}

// Parse reads the configuration from environ, or from the process
// environment when environ is nil
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate validates the Config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("logLevel", c.LogLevel, LogLevels, vb)
	if c.CacheTTL < 0 {
		vb.Field("cacheTTL", "cannot be negative")
	}
	if c.ContentDir != "" && c.ContentDB != "" {
		vb.Field("contentDB", "cannot be combined with contentDir")
	}

	return vb.Build()
}

// SlogLevel returns the slog level for LogLevel
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
