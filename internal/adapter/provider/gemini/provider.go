// Package gemini implements provider.Completer on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/heartmarshall/daily-shlok/internal/config"
	"github.com/heartmarshall/daily-shlok/internal/provider"
)

// Provider sends completion requests to a Gemini model.
type Provider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// NewProvider creates a Gemini client from LLMConfig.
func NewProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Provider, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Provider{
		client:  client,
		model:   cfg.ModelName(),
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "gemini"),
	}, nil
}

// Name identifies the provider in results and logs.
func (p *Provider) Name() string { return config.ProviderGemini }

// Complete generates content for a single user turn.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}
	gc := buildConfig(req)

	start := time.Now()
	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, gc)
	if err != nil {
		err = classify(ctx, err)
		p.log.WarnContext(ctx, "completion failed",
			slog.String("model", p.model),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: %w", provider.ErrEmptyResponse)
	}

	p.log.DebugContext(ctx, "completion done",
		slog.String("model", p.model),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("chars", len(text)),
	)
	return text, nil
}

func buildConfig(req provider.CompletionRequest) *genai.GenerateContentConfig {
	temp := float32(req.Temperature)
	gc := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		Temperature:     &temp,
	}
	if req.System != "" {
		gc.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	return gc
}

// classify maps genai and transport errors onto the provider sentinels.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("gemini: %w: %w", provider.ErrTimeout, err)
	}

	code, status := 0, ""
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code, status = apiErr.Code, apiErr.Status
	case errors.As(err, &apiErrPtr):
		code, status = apiErrPtr.Code, apiErrPtr.Status
	}

	switch {
	case code == http.StatusTooManyRequests && strings.Contains(strings.ToLower(err.Error()), "quota"):
		return fmt.Errorf("gemini: %w: %w", provider.ErrQuotaExceeded, err)
	case code == http.StatusTooManyRequests || status == "RESOURCE_EXHAUSTED":
		return fmt.Errorf("gemini: %w: %w", provider.ErrRateLimited, err)
	case code == http.StatusGatewayTimeout || status == "DEADLINE_EXCEEDED":
		return fmt.Errorf("gemini: %w: %w", provider.ErrTimeout, err)
	}
	return fmt.Errorf("gemini: %w: %w", provider.ErrUnavailable, err)
}
