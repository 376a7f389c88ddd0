package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/daily-shlok/internal/adapter/postgres"
	pubrepo "github.com/heartmarshall/daily-shlok/internal/adapter/postgres/publication"
	shlokrepo "github.com/heartmarshall/daily-shlok/internal/adapter/postgres/shlok"
	"github.com/heartmarshall/daily-shlok/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/daily-shlok/internal/adapter/provider/gemini"
	"github.com/heartmarshall/daily-shlok/internal/adapter/redis/cache"
	"github.com/heartmarshall/daily-shlok/internal/config"
	"github.com/heartmarshall/daily-shlok/internal/provider"
	"github.com/heartmarshall/daily-shlok/internal/service/balancer"
	"github.com/heartmarshall/daily-shlok/internal/service/generator"
	"github.com/heartmarshall/daily-shlok/internal/service/publication"
	"github.com/heartmarshall/daily-shlok/internal/service/uniqueness"
)

// Components holds the wired publication pipeline and the resources it
// owns. Close releases them.
type Components struct {
	Pool        *pgxpool.Pool
	Redis       *redis.Client
	Publication *publication.Service
}

// Build connects to the stores and wires the publication pipeline.
func Build(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	c := &Components{Pool: pool}

	shloks := shlokrepo.New(pool)
	pubs := pubrepo.New(pool)

	completer, err := newCompleter(ctx, cfg.LLM, log)
	if err != nil {
		c.Close()
		return nil, err
	}

	entries, err := generator.LoadTable(cfg.Generator.FallbackPath)
	if err != nil {
		c.Close()
		return nil, err
	}
	table := generator.NewTable(log, entries, pubs, cfg.Publication.UniquenessSample, nil)

	var primary generator.Generator
	if completer != nil {
		primary = generator.NewAI(log, completer, pubs, generator.AIConfig{
			MaxTokens:          cfg.LLM.MaxTokens,
			Temperature:        cfg.LLM.Temperature,
			VarietyTemperature: cfg.LLM.VarietyTemperature,
			PromptHistory:      cfg.Generator.PromptHistory,
		})
	}

	c.Publication = publication.NewService(log,
		publication.Config{
			Location:            cfg.Publication.Location,
			PublishAt:           cfg.Publication.PublishAt,
			UniquenessSample:    cfg.Publication.UniquenessSample,
			CategorySample:      cfg.Publication.CategorySample,
			HistoryDefaultLimit: cfg.Publication.HistoryDefaultLimit,
			HistoryMaxLimit:     cfg.Publication.HistoryMaxLimit,
		},
		shloks,
		pubs,
		generator.WithFallback(log, primary, table),
		table,
		uniqueness.NewChecker(log, pubs),
		balancer.New(log, pubs, nil),
	)

	if cfg.Redis.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			// The cache is optional; the store stays authoritative.
			log.WarnContext(ctx, "redis unavailable, running without cache", slog.String("error", err.Error()))
		} else {
			c.Redis = rdb
			c.Publication.WithCache(cache.New(rdb, cfg.Redis.KeyPrefix, cfg.Redis.TTL))
		}
	}

	log.InfoContext(ctx, "publication pipeline ready",
		slog.String("provider", cfg.LLM.Provider),
		slog.Int("fallback_entries", table.Len()),
		slog.String("zone", cfg.Publication.Location.String()),
		slog.Bool("cache", c.Redis != nil),
	)
	return c, nil
}

// Close releases the pool and the redis client.
func (c *Components) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// newCompleter returns nil when AI generation is disabled.
func newCompleter(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (provider.Completer, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropic.NewProvider(cfg, log), nil
	case config.ProviderGemini:
		p, err := gemini.NewProvider(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
