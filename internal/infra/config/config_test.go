package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 60, cfg.Muhurat.SlotMinutes)
	require.Equal(t, 6, cfg.Muhurat.DayStartHour)
	require.Equal(t, 20, cfg.Muhurat.DayEndHour)
	require.Equal(t, 10, cfg.Muhurat.MinScore)
	require.Equal(t, 6*time.Hour, cfg.Muhurat.CacheTTL)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
	require.Contains(t, cfg.HTTP.Retry.Exclude, "/api/v1/muhurat/suggest")
	require.False(t, cfg.Cache.RedisEnabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("MUHURAT_SLOT_MINUTES", "30")
	t.Setenv("MUHURAT_MIN_SCORE", "25")
	t.Setenv("MUHURAT_CACHE_TTL", "90m")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("GEOCODE_BASE_URL", "http://localhost:7070")
	t.Setenv("CACHE_REDIS_ENABLED", "true")
	t.Setenv("CACHE_REDIS_ADDR", "localhost:6379")
	t.Setenv("HTTP_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 30, cfg.Muhurat.SlotMinutes)
	require.Equal(t, 25, cfg.Muhurat.MinScore)
	require.Equal(t, 90*time.Minute, cfg.Muhurat.CacheTTL)
	require.Equal(t, "gpt-4o", cfg.LLM.Model)
	require.Equal(t, "http://localhost:7070", cfg.Geocode.BaseURL)
	require.True(t, cfg.Cache.RedisEnabled)
	require.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("http:\n  address: \":7000\"\nmuhurat:\n  minScore: 15\nllm:\n  model: test-model\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":7000", cfg.HTTP.Address)
	require.Equal(t, 15, cfg.Muhurat.MinScore)
	require.Equal(t, "test-model", cfg.LLM.Model)
	require.Equal(t, 20, cfg.Muhurat.DayEndHour)
}

func TestLoadMissingConfigFileFails(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":        func(c *Config) { c.HTTP.Address = "" },
		"zero slot minutes":    func(c *Config) { c.Muhurat.SlotMinutes = 0 },
		"oversized slot":       func(c *Config) { c.Muhurat.SlotMinutes = 90 },
		"end before start":     func(c *Config) { c.Muhurat.DayEndHour = 3 },
		"negative min score":   func(c *Config) { c.Muhurat.MinScore = -1 },
		"zero hard cap":        func(c *Config) { c.Muhurat.HardCapMultiplier = 0 },
		"zero range days":      func(c *Config) { c.Muhurat.MaxRangeDays = 0 },
		"zero prompt tokens":   func(c *Config) { c.LLM.MaxPromptTokens = 0 },
		"empty geocode url":    func(c *Config) { c.Geocode.BaseURL = "" },
		"redis without addr":   func(c *Config) { c.Cache.RedisEnabled = true; c.Cache.RedisAddr = " " },
		"rate limit zero rpm":  func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 },
		"retry zero attempts":  func(c *Config) { c.HTTP.Retry.MaxAttempts = 0 },
		"retry zero backoff":   func(c *Config) { c.HTTP.Retry.BaseBackoff = 0 },
		"negative cache ttl":   func(c *Config) { c.Muhurat.CacheTTL = -time.Second },
		"zero default results": func(c *Config) { c.Muhurat.DefaultResults = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
