// Package provider defines the contracts of external capabilities the
// services depend on. Implementations live under internal/adapter/provider.
package provider

import (
	"context"
	"errors"
)

// Classified completion failures. Adapters wrap one of these so callers can
// tell why a completion failed without knowing the vendor.
var (
	ErrQuotaExceeded = errors.New("completion quota exceeded")
	ErrRateLimited   = errors.New("completion rate limited")
	ErrTimeout       = errors.New("completion timed out")
	ErrEmptyResponse = errors.New("completion returned no text")
	ErrUnavailable   = errors.New("completion unavailable")
)

// CompletionRequest is a single request/response exchange with a language model.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Completer produces free-form text for a prompt.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Name() string
}
