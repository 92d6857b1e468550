package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/valkey-io/valkey-go"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
	"github.com/vedicworks/muhurat-api/internal/domain/audit"
	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
	"github.com/vedicworks/muhurat-api/internal/infra/config"
	"github.com/vedicworks/muhurat-api/internal/infra/ephemeris"
	"github.com/vedicworks/muhurat-api/internal/infra/geocode/nominatim"
	"github.com/vedicworks/muhurat-api/internal/infra/llm/openai"
	"github.com/vedicworks/muhurat-api/internal/infra/requestlog"
	"github.com/vedicworks/muhurat-api/internal/infra/suggeststore"
	"github.com/vedicworks/muhurat-api/internal/infra/traitmap"
	"github.com/vedicworks/muhurat-api/pkg/metrics"
)

func provideMuhuratConfig(cfg *config.Config) muhurat.Config {
	return muhurat.Config{
		SlotMinutes:       cfg.Muhurat.SlotMinutes,
		DayStartHour:      cfg.Muhurat.DayStartHour,
		DayEndHour:        cfg.Muhurat.DayEndHour,
		HardCapMultiplier: cfg.Muhurat.HardCapMultiplier,
		MinScore:          cfg.Muhurat.MinScore,
		MaxRangeDays:      cfg.Muhurat.MaxRangeDays,
		DefaultResults:    cfg.Muhurat.DefaultResults,
		CacheTTL:          cfg.Muhurat.CacheTTL,
	}
}

func provideEphemeris() astro.Ephemeris {
	return ephemeris.New()
}

// provideOpenAIClient returns nil when no API key is configured. Consumers
// that depend on the client must degrade to their non-LLM behaviour.
func provideOpenAIClient(cfg *config.Config, logger *slog.Logger) *openai.Client {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Info("llm api key not set, llm features disabled")
		return nil
	}
	client, err := openai.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		logger.Error("failed to create llm client, llm features disabled", "error", err)
		return nil
	}
	return client
}

func provideTraitMapper(cfg *config.Config, client *openai.Client, m *metrics.Metrics, logger *slog.Logger) (muhurat.TraitMapper, error) {
	if client == nil {
		return muhurat.NopTraitMapper{}, nil
	}
	return traitmap.New(client, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.MaxPromptTokens, m, logger)
}

func provideLocationResolver(cfg *config.Config, client *openai.Client, logger *slog.Logger) astro.LocationResolver {
	var normalizer nominatim.PlaceNormalizer
	if client != nil {
		normalizer = nominatim.NewLLMNormalizer(client, cfg.LLM.Model, cfg.LLM.Temperature)
	}
	return nominatim.NewResolver(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, normalizer, logger)
}

func provideSuggestionStore(cfg *config.Config, logger *slog.Logger) muhurat.Store {
	if cfg.Cache.RedisEnabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return suggeststore.NewMemoryStore(clockwork.NewRealClock())
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return suggeststore.NewMemoryStore(clockwork.NewRealClock())
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("suggestion valkey store enabled", "addr", cfg.Cache.RedisAddr)
			return suggeststore.NewValkeyStore(client, "muhurat")
		}
	}
	return suggeststore.NewMemoryStore(clockwork.NewRealClock())
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.RedisAddr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.RedisAddr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.RedisAddr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideAuditLog(cfg *config.Config, logger *slog.Logger) audit.Log {
	fallback := requestlog.NewMemoryLog(0)
	dsn := strings.TrimSpace(cfg.Audit.PostgresDSN)
	if dsn == "" {
		logger.Info("audit postgres dsn not set, using memory log")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory log", "error", err)
		return fallback
	}
	if cfg.Audit.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Audit.MaxConns
	}
	if cfg.Audit.MinConns > 0 {
		poolConfig.MinConns = cfg.Audit.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory log", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory log", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("audit postgres log enabled")
	return requestlog.NewPostgresLog(pool)
}
