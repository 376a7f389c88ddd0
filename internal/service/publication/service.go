// Package publication publishes one shlok per calendar date and serves
// published shloks. At most one publication per date is guaranteed by the
// store's unique date constraint; this package resolves lost races.
package publication

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/balancer"
	"github.com/heartmarshall/daily-shlok/internal/service/generator"
	"github.com/heartmarshall/daily-shlok/internal/service/uniqueness"
)

type shlokRepo interface {
	Create(ctx context.Context, s *domain.Shlok) (*domain.Shlok, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteOrphans(ctx context.Context, insertedBefore time.Time) (int64, error)
}

type publicationRepo interface {
	GetByDate(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error)
	// Link inserts the date link or, when the date is taken, returns the
	// existing link unchanged.
	Link(ctx context.Context, date domain.Date, shlokID uuid.UUID) (*domain.DailyShlok, error)
	List(ctx context.Context, onOrBefore domain.Date, limit, offset int) ([]domain.PublishedShlok, error)
}

type contentGenerator interface {
	Generate(ctx context.Context, req generator.Request) (generator.Result, error)
}

type uniquenessChecker interface {
	Check(ctx context.Context, candidate string, sampleSize int) uniqueness.Verdict
}

type categoryBalancer interface {
	LeastUsed(ctx context.Context, sampleSize int) balancer.Choice
}

type shlokCache interface {
	Get(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error)
	Set(ctx context.Context, p *domain.PublishedShlok) error
}

// Config holds the publication parameters.
type Config struct {
	Location            *time.Location
	PublishAt           domain.Clock
	UniquenessSample    int
	CategorySample      int
	HistoryDefaultLimit int
	HistoryMaxLimit     int
}

// Service coordinates daily publication and the read path.
type Service struct {
	shloks   shlokRepo
	pubs     publicationRepo
	gen      contentGenerator
	table    contentGenerator
	checker  uniquenessChecker
	balancer categoryBalancer
	cache    shlokCache
	cfg      Config
	now      func() time.Time
	log      *slog.Logger

	inflight singleflight.Group
}

// NewService creates a publication Service. gen is the generator with
// fallback; table is the curated table used when a retry is still not unique.
func NewService(
	log *slog.Logger,
	cfg Config,
	shloks shlokRepo,
	pubs publicationRepo,
	gen contentGenerator,
	table contentGenerator,
	checker uniquenessChecker,
	balancer categoryBalancer,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		shloks:   shloks,
		pubs:     pubs,
		gen:      gen,
		table:    table,
		checker:  checker,
		balancer: balancer,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "publication"),
	}
}

// WithCache enables read-through caching of published shloks.
func (s *Service) WithCache(c shlokCache) *Service {
	s.cache = c
	return s
}

// WithClock replaces the wall clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CurrentDate returns the current calendar date in the home zone.
func (s *Service) CurrentDate() domain.Date {
	return domain.DateOf(s.now(), s.cfg.Location)
}
