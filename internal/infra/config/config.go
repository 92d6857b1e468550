package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Muhurat MuhuratConfig `yaml:"muhurat"`
	LLM     LLMConfig     `yaml:"llm"`
	Geocode GeocodeConfig `yaml:"geocode"`
	Cache   CacheConfig   `yaml:"cache"`
	Audit   AuditConfig   `yaml:"audit"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	Retry        RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// MuhuratConfig bounds the slot scanner.
type MuhuratConfig struct {
	SlotMinutes       int           `yaml:"slotMinutes"`
	DayStartHour      int           `yaml:"dayStartHour"`
	DayEndHour        int           `yaml:"dayEndHour"`
	HardCapMultiplier int           `yaml:"hardCapMultiplier"`
	MinScore          int           `yaml:"minScore"`
	MaxRangeDays      int           `yaml:"maxRangeDays"`
	DefaultResults    int           `yaml:"defaultResults"`
	CacheTTL          time.Duration `yaml:"cacheTtl"`
}

// LLMConfig contains OpenAI settings for trait mapping and place
// normalization. An empty APIKey disables both features.
type LLMConfig struct {
	APIKey          string  `yaml:"apiKey"`
	BaseURL         string  `yaml:"baseUrl"`
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxPromptTokens int     `yaml:"maxPromptTokens"`
}

// GeocodeConfig controls the Nominatim client.
type GeocodeConfig struct {
	BaseURL   string `yaml:"baseUrl"`
	UserAgent string `yaml:"userAgent"`
}

// CacheConfig contains connection information for the suggestion cache.
type CacheConfig struct {
	RedisEnabled bool   `yaml:"redisEnabled"`
	RedisAddr    string `yaml:"redisAddr"`
}

// AuditConfig contains DSN and pooling settings for the request log.
type AuditConfig struct {
	PostgresDSN string `yaml:"postgresDsn"`
	MaxConns    int32  `yaml:"maxConns"`
	MinConns    int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("MUHURAT_SLOT_MINUTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Muhurat.SlotMinutes = parsed
		}
	}
	if v := os.Getenv("MUHURAT_DAY_START_HOUR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Muhurat.DayStartHour = parsed
		}
	}
	if v := os.Getenv("MUHURAT_DAY_END_HOUR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Muhurat.DayEndHour = parsed
		}
	}
	if v := os.Getenv("MUHURAT_MIN_SCORE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Muhurat.MinScore = parsed
		}
	}
	if v := os.Getenv("MUHURAT_MAX_RANGE_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Muhurat.MaxRangeDays = parsed
		}
	}
	if v := os.Getenv("MUHURAT_DEFAULT_RESULTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Muhurat.DefaultResults = parsed
		}
	}
	if v := os.Getenv("MUHURAT_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Muhurat.CacheTTL = parsed
		}
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_MAX_PROMPT_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.LLM.MaxPromptTokens = parsed
		}
	}
	if v := os.Getenv("GEOCODE_BASE_URL"); v != "" {
		cfg.Geocode.BaseURL = v
	}
	if v := os.Getenv("GEOCODE_USER_AGENT"); v != "" {
		cfg.Geocode.UserAgent = v
	}
	if v := os.Getenv("CACHE_REDIS_ENABLED"); v != "" {
		cfg.Cache.RedisEnabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CACHE_REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("AUDIT_POSTGRES_DSN"); v != "" {
		cfg.Audit.PostgresDSN = v
	}
	if v := os.Getenv("AUDIT_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Audit.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("AUDIT_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Audit.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/muhurat/suggest",
				},
			},
		},
		Muhurat: MuhuratConfig{
			SlotMinutes:       60,
			DayStartHour:      6,
			DayEndHour:        20,
			HardCapMultiplier: 5,
			MinScore:          10,
			MaxRangeDays:      365,
			DefaultResults:    10,
			CacheTTL:          6 * time.Hour,
		},
		LLM: LLMConfig{
			Model:           "gpt-4o-mini",
			Temperature:     0.1,
			MaxPromptTokens: 1024,
		},
		Geocode: GeocodeConfig{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "muhurat-api/1.0",
		},
		Cache: CacheConfig{
			RedisEnabled: false,
			RedisAddr:    "",
		},
		Audit: AuditConfig{
			PostgresDSN: "",
			MaxConns:    4,
			MinConns:    0,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Muhurat.SlotMinutes <= 0 || c.Muhurat.SlotMinutes > 60 {
		return errors.New("muhurat.slotMinutes must be in (0, 60]")
	}
	if c.Muhurat.DayStartHour < 0 || c.Muhurat.DayStartHour > 23 {
		return errors.New("muhurat.dayStartHour must be a valid hour")
	}
	if c.Muhurat.DayEndHour < c.Muhurat.DayStartHour || c.Muhurat.DayEndHour > 23 {
		return errors.New("muhurat.dayEndHour must be >= dayStartHour and a valid hour")
	}
	if c.Muhurat.HardCapMultiplier <= 0 {
		return errors.New("muhurat.hardCapMultiplier must be positive")
	}
	if c.Muhurat.MinScore < 0 {
		return errors.New("muhurat.minScore cannot be negative")
	}
	if c.Muhurat.MaxRangeDays <= 0 {
		return errors.New("muhurat.maxRangeDays must be positive")
	}
	if c.Muhurat.DefaultResults <= 0 {
		return errors.New("muhurat.defaultResults must be positive")
	}
	if c.Muhurat.CacheTTL < 0 {
		return errors.New("muhurat.cacheTtl cannot be negative")
	}
	if c.LLM.MaxPromptTokens <= 0 {
		return errors.New("llm.maxPromptTokens must be positive")
	}
	if c.Geocode.BaseURL == "" {
		return errors.New("geocode.baseUrl cannot be empty")
	}
	if c.Geocode.UserAgent == "" {
		return errors.New("geocode.userAgent cannot be empty")
	}
	if c.Cache.RedisEnabled && strings.TrimSpace(c.Cache.RedisAddr) == "" {
		return errors.New("cache.redisAddr cannot be empty when the redis cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
