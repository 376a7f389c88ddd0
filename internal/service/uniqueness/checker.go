// Package uniqueness decides whether a candidate shlok repeats recent ones.
package uniqueness

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

type historySource interface {
	RecentTexts(ctx context.Context, n int) ([]string, error)
}

// Verdict is the outcome of a check.
type Verdict struct {
	Unique bool
	// Match is the recent text the candidate collided with.
	Match string
	// Checked is the number of recent texts compared.
	Checked int
	// Degraded is set when history could not be read and the candidate
	// was accepted without comparison.
	Degraded bool
}

// Checker compares candidates against the most recently published texts.
// Only that bounded window is searched; older texts may repeat.
type Checker struct {
	history historySource
	log     *slog.Logger
}

// NewChecker creates a Checker.
func NewChecker(log *slog.Logger, history historySource) *Checker {
	return &Checker{
		history: history,
		log:     log.With("service", "uniqueness"),
	}
}

// Check compares candidate with up to sampleSize recent texts. The candidate
// is a repeat when, ignoring case and surrounding whitespace, either text
// contains the other. Failing to read history yields a degraded unique verdict.
func (c *Checker) Check(ctx context.Context, candidate string, sampleSize int) Verdict {
	recent, err := c.history.RecentTexts(ctx, sampleSize)
	if err != nil {
		c.log.WarnContext(ctx, "history unavailable, treating candidate as unique",
			slog.Int("sample_size", sampleSize),
			slog.String("error", err.Error()),
		)
		return Verdict{Unique: true, Degraded: true}
	}

	for _, text := range recent {
		if domain.SimilarText(candidate, text) {
			return Verdict{Unique: false, Match: text, Checked: len(recent)}
		}
	}
	return Verdict{Unique: true, Checked: len(recent)}
}

// IsUnique is Check reduced to its boolean.
func (c *Checker) IsUnique(ctx context.Context, candidate string, sampleSize int) bool {
	return c.Check(ctx, candidate, sampleSize).Unique
}
