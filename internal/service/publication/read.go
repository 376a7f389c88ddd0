package publication

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

// Today returns today's shlok, publishing it first when nobody has yet.
// Concurrent callers share one publish attempt.
func (s *Service) Today(ctx context.Context) (*domain.PublishedShlok, error) {
	return s.ForDate(ctx, s.CurrentDate())
}

// ForDate returns the shlok published for date. Only today is published
// lazily; a missing past date is ErrNotFound.
func (s *Service) ForDate(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error) {
	today := s.CurrentDate()
	if date.After(today) {
		return nil, fmt.Errorf("shlok for %s: %w", date, domain.ErrFutureDate)
	}

	if p := s.cacheGet(ctx, date); p != nil {
		return p, nil
	}

	p, err := s.pubs.GetByDate(ctx, date)
	if err == nil {
		s.cacheSet(ctx, p)
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("shlok for %s: %w", date, err)
	}
	if date != today {
		return nil, fmt.Errorf("shlok for %s: %w", date, domain.ErrNotFound)
	}

	// The publish must not be abandoned because the first requester went away.
	publishCtx := context.WithoutCancel(ctx)
	v, err, shared := s.inflight.Do(date.String(), func() (any, error) {
		return s.PublishForDate(publishCtx, date)
	})
	if err != nil {
		return nil, fmt.Errorf("shlok for %s: %w", date, err)
	}
	res := v.(*PublishResult)
	if shared {
		s.log.DebugContext(ctx, "joined in-flight publish", slog.String("date", date.String()))
	}
	out := res.Shlok
	return &out, nil
}

// HistoryPage is one page of history with the bounds actually applied.
type HistoryPage struct {
	Items  []domain.PublishedShlok
	Limit  int
	Offset int
}

// History returns published shloks dated on or before today, newest first.
// limit is clamped to the configured bounds; a non-positive limit selects
// the default.
func (s *Service) History(ctx context.Context, limit, offset int) (*HistoryPage, error) {
	page := &HistoryPage{Limit: s.clampLimit(limit), Offset: max(offset, 0)}
	items, err := s.pubs.List(ctx, s.CurrentDate(), page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	page.Items = items
	return page, nil
}

func (s *Service) clampLimit(limit int) int {
	def, hi := s.cfg.HistoryDefaultLimit, s.cfg.HistoryMaxLimit
	if def <= 0 {
		def = 30
	}
	if hi < def {
		hi = def
	}
	switch {
	case limit <= 0:
		return def
	case limit > hi:
		return hi
	default:
		return limit
	}
}

// PruneOrphans deletes shloks that no date links to and that were inserted
// before now minus olderThan. Age is the insert time, not CreatedAt, which
// carries the publication timestamp.
func (s *Service) PruneOrphans(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan < 0 {
		return 0, domain.NewValidationError("older_than", "must not be negative")
	}
	n, err := s.shloks.DeleteOrphans(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("prune orphans: %w", err)
	}
	s.log.InfoContext(ctx, "orphans pruned", slog.Int64("deleted", n))
	return n, nil
}

func (s *Service) cacheGet(ctx context.Context, date domain.Date) *domain.PublishedShlok {
	if s.cache == nil {
		return nil
	}
	p, err := s.cache.Get(ctx, date)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "cache get failed", slog.String("date", date.String()), slog.String("error", err.Error()))
		}
		return nil
	}
	return p
}

func (s *Service) cacheSet(ctx context.Context, p *domain.PublishedShlok) {
	if s.cache == nil || p == nil {
		return
	}
	if err := s.cache.Set(ctx, p); err != nil {
		s.log.WarnContext(ctx, "cache set failed", slog.String("date", p.Date.String()), slog.String("error", err.Error()))
	}
}
