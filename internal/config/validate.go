package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration
// and resolves the derived fields (zone, clocks).
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if c.Generator.PromptHistory < 0 {
		return fmt.Errorf("generator: prompt_history must be >= 0 (got %d)", c.Generator.PromptHistory)
	}
	if err := c.Publication.validate(); err != nil {
		return fmt.Errorf("publication: %w", err)
	}

	at, err := domain.ParseClock(c.Scheduler.AtRaw)
	if err != nil {
		return fmt.Errorf("scheduler: at: %w", err)
	}
	c.Scheduler.At = at

	if c.Admin.JWTSecret != "" && len(c.Admin.JWTSecret) < 32 {
		return fmt.Errorf("admin.jwt_secret must be at least 32 characters (got %d)", len(c.Admin.JWTSecret))
	}
	if c.Admin.TokenTTL <= 0 {
		return fmt.Errorf("admin.token_ttl must be > 0 (got %v)", c.Admin.TokenTTL)
	}

	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 (got %v)", c.Redis.TTL)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderAnthropic, ProviderGemini:
		if l.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", l.Provider)
		}
	case ProviderNone:
		return nil
	default:
		return fmt.Errorf("unknown provider %q (want anthropic, gemini or none)", l.Provider)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.VarietyTemperature < 0 {
		return fmt.Errorf("temperatures must be >= 0")
	}
	return nil
}

func (p *PublicationConfig) validate() error {
	loc, err := domain.LoadZone(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	p.Location = loc

	at, err := domain.ParseClock(p.PublishAtRaw)
	if err != nil {
		return fmt.Errorf("publish_at: %w", err)
	}
	p.PublishAt = at

	if p.UniquenessSample <= 0 {
		return fmt.Errorf("uniqueness_sample must be > 0 (got %d)", p.UniquenessSample)
	}
	if p.CategorySample <= 0 {
		return fmt.Errorf("category_sample must be > 0 (got %d)", p.CategorySample)
	}
	if p.HistoryDefaultLimit <= 0 || p.HistoryMaxLimit < p.HistoryDefaultLimit {
		return fmt.Errorf("history limits must satisfy 0 < default (%d) <= max (%d)", p.HistoryDefaultLimit, p.HistoryMaxLimit)
	}
	return nil
}
