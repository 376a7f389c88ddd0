// Package cache keeps published shloks in Redis keyed by date. Published
// records never change, so entries only expire by TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/daily-shlok/internal/config"
	"github.com/heartmarshall/daily-shlok/internal/domain"
)

// client is the subset of redis.Cmdable the cache uses.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Cache stores published shloks.
type Cache struct {
	rdb    client
	prefix string
	ttl    time.Duration
}

// New creates a Cache on top of a Redis client.
func New(rdb client, prefix string, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, prefix: prefix, ttl: ttl}
}

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

type entry struct {
	ID             uuid.UUID `json:"id"`
	Text           string    `json:"shlok"`
	MeaningHindi   string    `json:"meaning_hindi"`
	MeaningEnglish string    `json:"meaning_english"`
	Source         string    `json:"source"`
	Category       string    `json:"category,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Date           string    `json:"date"`
}

func (c *Cache) key(date domain.Date) string {
	return c.prefix + "daily:" + date.String()
}

// Get returns the cached shlok for date, or domain.ErrNotFound on a miss.
func (c *Cache) Get(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error) {
	raw, err := c.rdb.Get(ctx, c.key(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("cache %s: %w", date, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", date, err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("cache decode %s: %w", date, err)
	}
	d, err := domain.ParseDate(e.Date)
	if err != nil {
		return nil, fmt.Errorf("cache decode %s: %w", date, err)
	}

	p := &domain.PublishedShlok{
		Shlok: domain.Shlok{
			ID:             e.ID,
			Text:           e.Text,
			MeaningHindi:   e.MeaningHindi,
			MeaningEnglish: e.MeaningEnglish,
			Source:         e.Source,
			CreatedAt:      e.CreatedAt,
		},
		Date: d,
	}
	if cat, ok := domain.ParseCategory(e.Category); ok {
		p.Category = &cat
	}
	return p, nil
}

// Set stores p under its date.
func (c *Cache) Set(ctx context.Context, p *domain.PublishedShlok) error {
	raw, err := json.Marshal(entry{
		ID:             p.ID,
		Text:           p.Text,
		MeaningHindi:   p.MeaningHindi,
		MeaningEnglish: p.MeaningEnglish,
		Source:         p.Source,
		Category:       string(p.CategoryOrEmpty()),
		CreatedAt:      p.CreatedAt,
		Date:           p.Date.String(),
	})
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", p.Date, err)
	}
	if err := c.rdb.Set(ctx, c.key(p.Date), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", p.Date, err)
	}
	return nil
}
