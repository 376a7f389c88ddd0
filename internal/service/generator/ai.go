package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/daily-shlok/internal/provider"
)

// AIConfig tunes completion requests.
type AIConfig struct {
	MaxTokens          int
	Temperature        float64
	VarietyTemperature float64
	// PromptHistory is how many recent texts are listed in the prompt.
	PromptHistory int
}

// AI generates shloks with a language model.
type AI struct {
	completer provider.Completer
	history   historySource
	cfg       AIConfig
	log       *slog.Logger
}

// NewAI creates an AI generator. history may be nil.
func NewAI(log *slog.Logger, completer provider.Completer, history historySource, cfg AIConfig) *AI {
	return &AI{
		completer: completer,
		history:   history,
		cfg:       cfg,
		log:       log.With("generator", "ai", "provider", completer.Name()),
	}
}

// Generate asks the model for a shlok and parses the answer.
// A parsed shlok without a recognizable category takes the requested one.
func (g *AI) Generate(ctx context.Context, req Request) (Result, error) {
	creq := provider.CompletionRequest{
		System:      systemStandard,
		Prompt:      buildPrompt(req.Category, g.recent(ctx)),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}
	if req.Mode == ModeVariety {
		creq.System = systemVariety
		creq.Temperature = g.cfg.VarietyTemperature
	}

	text, err := g.completer.Complete(ctx, creq)
	if err != nil {
		return Result{}, fmt.Errorf("generate %s: %w", req.Category, err)
	}

	s, err := Parse(text)
	if err != nil {
		g.log.DebugContext(ctx, "unparseable completion", slog.String("text", text))
		return Result{}, fmt.Errorf("generate %s: %w", req.Category, err)
	}
	if s.Category == nil && req.Category != "" {
		c := req.Category
		s.Category = &c
	}

	return Result{
		Shlok:    s,
		Outcome:  OutcomeGenerated,
		Provider: g.completer.Name(),
	}, nil
}

func (g *AI) recent(ctx context.Context) []string {
	if g.history == nil || g.cfg.PromptHistory <= 0 {
		return nil
	}
	texts, err := g.history.RecentTexts(ctx, g.cfg.PromptHistory)
	if err != nil {
		g.log.WarnContext(ctx, "recent history unavailable for prompt", slog.String("error", err.Error()))
		return nil
	}
	return texts
}
