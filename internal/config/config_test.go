package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/solution-quest/internal/config"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Parse(map[string]string{})
	s.Require().NoError(err)

	s.Empty(cfg.ContentDir)
	s.Empty(cfg.ContentDB)
	s.Empty(cfg.RedisAddr)
	s.Equal(time.Hour, cfg.CacheTTL)
	s.Equal("info", cfg.LogLevel)
	s.Equal(uint64(0), cfg.Seed)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestParse() {
	testCases := []struct {
		name     string
		environ  map[string]string
		expected *config.Config
		errCode  errors.Code
	}{
		{
			name: "all values",
			environ: map[string]string{
				"QUEST_CONTENT_DB": "content.db",
				"QUEST_REDIS_ADDR": "localhost:6379",
				"QUEST_CACHE_TTL":  "15m",
				"QUEST_LOG_LEVEL":  "DEBUG",
				"QUEST_SEED":       "42",
			},
			expected: &config.Config{
				ContentDB: "content.db",
				RedisAddr: "localhost:6379",
				CacheTTL:  15 * time.Minute,
				LogLevel:  "debug",
				Seed:      42,
			},
		},
		{
			name:     "unprefixed variables are ignored",
			environ:  map[string]string{"LOG_LEVEL": "error"},
			expected: &config.Config{CacheTTL: time.Hour, LogLevel: "info"},
		},
		{
			name:    "unknown log level",
			environ: map[string]string{"QUEST_LOG_LEVEL": "loud"},
			errCode: errors.CodeInvalidArgument,
		},
		{
			name:    "bad duration",
			environ: map[string]string{"QUEST_CACHE_TTL": "soon"},
			errCode: errors.CodeInvalidArgument,
		},
		{
			name: "dir and db together",
			environ: map[string]string{
				"QUEST_CONTENT_DIR": "./content",
				"QUEST_CONTENT_DB":  "content.db",
			},
			errCode: errors.CodeInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Parse(tc.environ)
			if tc.errCode != "" {
				s.Require().Error(err)
				s.Equal(tc.errCode, errors.GetCode(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.expected, cfg)
		})
	}
}

func (s *ConfigTestSuite) TestLoadDotenv() {
	path := filepath.Join(s.T().TempDir(), "quest.env")
	s.Require().NoError(os.WriteFile(path, []byte("QUEST_LOG_LEVEL=warn\nQUEST_SEED=7\n"), 0o600))

	// godotenv never overrides variables that are already set
	s.T().Setenv("QUEST_SEED", "9")
	s.T().Cleanup(func() { _ = os.Unsetenv("QUEST_LOG_LEVEL") })

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal("warn", cfg.LogLevel)
	s.Equal(slog.LevelWarn, cfg.SlogLevel())
	s.Equal(uint64(9), cfg.Seed)
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.True(errors.IsInvalidArgument(err))
}
