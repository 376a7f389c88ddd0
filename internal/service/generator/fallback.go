package generator

import (
	"context"
	"fmt"
	"log/slog"
)

// Fallback runs a primary generator and substitutes the fallback generator's
// result whenever the primary fails.
type Fallback struct {
	primary  Generator
	fallback Generator
	log      *slog.Logger
}

// WithFallback composes primary and fallback. A nil primary means AI is
// disabled and every call is served by fallback.
func WithFallback(log *slog.Logger, primary, fallback Generator) *Fallback {
	return &Fallback{
		primary:  primary,
		fallback: fallback,
		log:      log.With("generator", "fallback"),
	}
}

// Generate never surfaces a primary error. The returned Result records
// whether the fallback was used and why.
func (g *Fallback) Generate(ctx context.Context, req Request) (Result, error) {
	reason := ReasonDisabled
	if g.primary != nil {
		res, err := g.primary.Generate(ctx, req)
		if err == nil {
			return res, nil
		}
		reason = reasonOf(err)
		g.log.WarnContext(ctx, "primary generator failed, using fallback",
			slog.String("category", string(req.Category)),
			slog.String("mode", string(req.Mode)),
			slog.String("reason", string(reason)),
			slog.String("error", err.Error()),
		)
	}

	res, err := g.fallback.Generate(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("fallback generator: %w", err)
	}
	res.Outcome = OutcomeFallback
	res.FallbackReason = reason
	return res, nil
}
