// Package anthropic implements provider.Completer on top of the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/daily-shlok/internal/config"
	"github.com/heartmarshall/daily-shlok/internal/provider"
)

// Provider sends completion requests to Claude.
type Provider struct {
	client  sdk.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// NewProvider creates a Provider from LLMConfig. The SDK's own retries are
// disabled: a failed completion falls back to the curated table instead.
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Provider{
		client:  sdk.NewClient(opts...),
		model:   cfg.ModelName(),
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "anthropic"),
	}
}

// Name identifies the provider in results and logs.
func (p *Provider) Name() string { return config.ProviderAnthropic }

// Complete sends one message and returns the concatenated text blocks.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
		Temperature: sdk.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		err = classify(ctx, err)
		p.log.WarnContext(ctx, "completion failed",
			slog.String("model", p.model),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("anthropic: %w", provider.ErrEmptyResponse)
	}

	p.log.DebugContext(ctx, "completion done",
		slog.String("model", p.model),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("chars", len(text)),
	)
	return text, nil
}

// classify maps SDK and transport errors onto the provider sentinels.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("anthropic: %w: %w", provider.ErrTimeout, err)
	}

	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("anthropic: %w: %w", provider.ErrRateLimited, err)
		case apiErr.StatusCode == http.StatusPaymentRequired,
			apiErr.StatusCode == http.StatusForbidden,
			apiErr.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(err.Error()), "credit balance"):
			return fmt.Errorf("anthropic: %w: %w", provider.ErrQuotaExceeded, err)
		case apiErr.StatusCode == http.StatusRequestTimeout, apiErr.StatusCode == http.StatusGatewayTimeout:
			return fmt.Errorf("anthropic: %w: %w", provider.ErrTimeout, err)
		}
	}

	return fmt.Errorf("anthropic: %w: %w", provider.ErrUnavailable, err)
}
