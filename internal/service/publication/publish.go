package publication

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/generator"
)

// Status describes how PublishForDate obtained its result.
type Status string

const (
	// StatusExisting means the date was already published; nothing was generated.
	StatusExisting Status = "existing"
	// StatusPublished means a new shlok was generated and linked.
	StatusPublished Status = "published"
	// StatusConflictResolved means another publisher linked the date first;
	// the freshly generated shlok was discarded.
	StatusConflictResolved Status = "conflict_resolved"
)

// PublishResult is the outcome of a publish call.
type PublishResult struct {
	Shlok          domain.PublishedShlok
	Status         Status
	Category       domain.Category
	Generation     generator.Outcome
	FallbackReason generator.FallbackReason
	Provider       string
	// AIAttempts counts generator calls that reached the language model.
	AIAttempts  int
	UniqueRetry bool
}

// ShouldPublishToday reports whether today still lacks a publication.
// A failed lookup answers true.
func (s *Service) ShouldPublishToday(ctx context.Context) bool {
	today := s.CurrentDate()
	_, err := s.pubs.GetByDate(ctx, today)
	switch {
	case err == nil:
		return false
	case errors.Is(err, domain.ErrNotFound):
		return true
	default:
		s.log.WarnContext(ctx, "publication lookup failed, assuming unpublished",
			slog.String("date", today.String()),
			slog.String("error", err.Error()),
		)
		return true
	}
}

// PublishToday publishes today's shlok or returns the existing one.
func (s *Service) PublishToday(ctx context.Context) (*PublishResult, error) {
	return s.PublishForDate(ctx, s.CurrentDate())
}

// PublishForDate publishes a shlok for date, which may be today or a past
// date. Repeated calls for a published date return the same shlok without
// generating anything.
func (s *Service) PublishForDate(ctx context.Context, date domain.Date) (*PublishResult, error) {
	if date.IsZero() {
		return nil, domain.NewValidationError("date", "required")
	}
	if date.After(s.CurrentDate()) {
		return nil, fmt.Errorf("publish %s: %w", date, domain.ErrFutureDate)
	}

	existing, err := s.pubs.GetByDate(ctx, date)
	switch {
	case err == nil:
		s.cacheSet(ctx, existing)
		return &PublishResult{Shlok: *existing, Status: StatusExisting, Category: existing.CategoryOrEmpty()}, nil
	case !errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "publication lookup failed, publishing anyway",
			slog.String("date", date.String()),
			slog.String("error", err.Error()),
		)
	}

	result, err := s.generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("publish %s: %w", date, err)
	}

	shlok := result.Shlok.Shlok
	if err := shlok.Validate(); err != nil {
		return nil, fmt.Errorf("publish %s: generated shlok: %w", date, err)
	}
	shlok.CreatedAt = date.At(s.cfg.PublishAt, s.cfg.Location).UTC()

	created, err := s.shloks.Create(ctx, &shlok)
	if err != nil {
		return nil, fmt.Errorf("publish %s: create shlok: %w", date, err)
	}

	link, err := s.pubs.Link(ctx, date, created.ID)
	switch {
	case err == nil && link.ShlokID == created.ID:
		result.Shlok = domain.PublishedShlok{Shlok: *created, Date: date}
		result.Status = StatusPublished
	case err == nil, errors.Is(err, domain.ErrAlreadyExists):
		winner, rerr := s.resolveConflict(ctx, date, created.ID)
		if rerr != nil {
			return nil, fmt.Errorf("publish %s: %w", date, rerr)
		}
		result.Shlok = *winner
		result.Status = StatusConflictResolved
	default:
		s.log.ErrorContext(ctx, "link failed, shlok left unlinked",
			slog.String("date", date.String()),
			slog.String("shlok_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("publish %s: link: %w", date, err)
	}

	s.cacheSet(ctx, &result.Shlok)
	s.log.InfoContext(ctx, "shlok published",
		slog.String("date", date.String()),
		slog.String("status", string(result.Status)),
		slog.String("shlok_id", result.Shlok.ID.String()),
		slog.String("category", string(result.Category)),
		slog.String("generation", string(result.Generation)),
		slog.String("fallback_reason", string(result.FallbackReason)),
		slog.Int("ai_attempts", result.AIAttempts),
		slog.Bool("unique_retry", result.UniqueRetry),
	)
	return result, nil
}

// generate picks a category and produces a shlok that does not repeat the
// recent window, making at most two model calls. When the retry still
// repeats, the curated table's pick is accepted unchecked.
func (s *Service) generate(ctx context.Context) (*PublishResult, error) {
	choice := s.balancer.LeastUsed(ctx, s.cfg.CategorySample)
	out := &PublishResult{Category: choice.Category}

	res, err := s.gen.Generate(ctx, generator.Request{Category: choice.Category, Mode: generator.ModeStandard})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	out.count(res)

	if v := s.checker.Check(ctx, res.Shlok.Text, s.cfg.UniquenessSample); !v.Unique {
		out.UniqueRetry = true
		s.log.InfoContext(ctx, "generated shlok repeats recent one, retrying",
			slog.String("category", string(choice.Category)),
			slog.String("match", v.Match),
		)

		res, err = s.gen.Generate(ctx, generator.Request{Category: choice.Category, Mode: generator.ModeVariety})
		if err != nil {
			return nil, fmt.Errorf("generate retry: %w", err)
		}
		out.count(res)

		if v := s.checker.Check(ctx, res.Shlok.Text, s.cfg.UniquenessSample); !v.Unique {
			res, err = s.table.Generate(ctx, generator.Request{Category: choice.Category})
			if err != nil {
				return nil, fmt.Errorf("generate from table: %w", err)
			}
			res.Outcome = generator.OutcomeFallback
			res.FallbackReason = generator.ReasonNotUnique
		}
	}

	out.Shlok = domain.PublishedShlok{Shlok: res.Shlok}
	out.Generation = res.Outcome
	out.FallbackReason = res.FallbackReason
	out.Provider = res.Provider
	return out, nil
}

func (r *PublishResult) count(res generator.Result) {
	if res.FallbackReason != generator.ReasonDisabled {
		r.AIAttempts++
	}
}

// resolveConflict returns the publication that won date and deletes the
// losing shlok. A failed delete leaves an orphan for PruneOrphans.
func (s *Service) resolveConflict(ctx context.Context, date domain.Date, loser uuid.UUID) (*domain.PublishedShlok, error) {
	winner, err := s.pubs.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("re-fetch after conflict: %w", err)
	}
	if winner.ID == loser {
		return winner, nil
	}

	if err := s.shloks.Delete(ctx, loser); err != nil {
		s.log.WarnContext(ctx, "orphan cleanup failed",
			slog.String("date", date.String()),
			slog.String("shlok_id", loser.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "publication race lost, returning winner",
		slog.String("date", date.String()),
		slog.String("winner_id", winner.ID.String()),
		slog.String("loser_id", loser.String()),
	)
	return winner, nil
}
