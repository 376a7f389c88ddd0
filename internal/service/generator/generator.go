// Package generator produces shloks either from a language model or from a
// curated table, behind one Generator interface.
package generator

import (
	"context"
	"errors"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/provider"
)

// Mode selects the prompt flavour.
type Mode string

const (
	// ModeStandard asks for a well-known verse at the base temperature.
	ModeStandard Mode = "standard"
	// ModeVariety raises the temperature and steers toward lesser-known sources.
	ModeVariety Mode = "variety"
)

// Outcome tells which path produced a Result.
type Outcome string

const (
	OutcomeGenerated Outcome = "generated"
	OutcomeFallback  Outcome = "fallback"
)

// FallbackReason classifies why the table was used instead of the model.
type FallbackReason string

const (
	ReasonNone          FallbackReason = ""
	ReasonDisabled      FallbackReason = "disabled"
	ReasonQuotaExceeded FallbackReason = "quota_exceeded"
	ReasonRateLimited   FallbackReason = "rate_limited"
	ReasonTimeout       FallbackReason = "timeout"
	ReasonEmptyResponse FallbackReason = "empty_response"
	ReasonParse         FallbackReason = "parse_error"
	ReasonUnavailable   FallbackReason = "unavailable"
	ReasonNotUnique     FallbackReason = "not_unique"
)

// ProviderTable names the curated table in Result.Provider.
const ProviderTable = "table"

// ErrParse is returned when a completion does not contain a complete shlok.
var ErrParse = errors.New("unparseable completion")

// Request describes what to generate. An empty Category means any.
type Request struct {
	Category domain.Category
	Mode     Mode
}

// Result is a generated shlok plus how it was obtained.
type Result struct {
	Shlok          domain.Shlok
	Outcome        Outcome
	Provider       string
	FallbackReason FallbackReason
}

// Generator produces one shlok per call.
type Generator interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

// historySource lists recently published shlok texts, newest first.
type historySource interface {
	RecentTexts(ctx context.Context, n int) ([]string, error)
}

// reasonOf maps a primary generator error onto a FallbackReason.
func reasonOf(err error) FallbackReason {
	switch {
	case errors.Is(err, provider.ErrQuotaExceeded):
		return ReasonQuotaExceeded
	case errors.Is(err, provider.ErrRateLimited):
		return ReasonRateLimited
	case errors.Is(err, provider.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, provider.ErrEmptyResponse):
		return ReasonEmptyResponse
	case errors.Is(err, ErrParse):
		return ReasonParse
	default:
		return ReasonUnavailable
	}
}
