// Package scheduler triggers the daily publication at a fixed wall-clock
// time in the home zone.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/publication"
)

type publisher interface {
	ShouldPublishToday(ctx context.Context) bool
	PublishToday(ctx context.Context) (*publication.PublishResult, error)
}

// Daily fires once per calendar day.
type Daily struct {
	pub publisher
	at  domain.Clock
	loc *time.Location
	log *slog.Logger

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// New creates a Daily trigger firing at at in loc.
func New(log *slog.Logger, pub publisher, at domain.Clock, loc *time.Location) *Daily {
	if loc == nil {
		loc = time.UTC
	}
	return &Daily{
		pub:   pub,
		at:    at,
		loc:   loc,
		log:   log.With("component", "scheduler"),
		now:   time.Now,
		after: time.After,
	}
}

// NextRun returns the first instant strictly after now at which the wall
// clock in loc reads at. On a day where at falls in a DST gap the time is
// normalised forward by the gap.
func NextRun(now time.Time, at domain.Clock, loc *time.Location) time.Time {
	today := domain.DateOf(now, loc)
	next := today.At(at, loc)
	if !next.After(now) {
		next = today.AddDays(1).At(at, loc)
	}
	return next
}

// Run blocks until ctx is canceled. When started after today's run time
// with today still unpublished, it publishes immediately.
func (d *Daily) Run(ctx context.Context) error {
	now := d.now()
	if !domain.DateOf(now, d.loc).At(d.at, d.loc).After(now) {
		d.RunOnce(ctx)
	}

	for {
		next := NextRun(d.now(), d.at, d.loc)
		d.log.InfoContext(ctx, "next publication scheduled", slog.Time("at", next))

		select {
		case <-ctx.Done():
			d.log.InfoContext(ctx, "scheduler stopped")
			return nil
		case <-d.after(next.Sub(d.now())):
			d.RunOnce(ctx)
		}
	}
}

// RunOnce publishes today's shlok unless it already exists. Failures are
// logged; the next day's run is unaffected.
func (d *Daily) RunOnce(ctx context.Context) {
	if !d.pub.ShouldPublishToday(ctx) {
		d.log.DebugContext(ctx, "already published today")
		return
	}

	res, err := d.pub.PublishToday(ctx)
	if err != nil {
		d.log.ErrorContext(ctx, "scheduled publication failed", slog.String("error", err.Error()))
		return
	}
	d.log.InfoContext(ctx, "scheduled publication done",
		slog.String("date", res.Shlok.Date.String()),
		slog.String("status", string(res.Status)),
		slog.String("shlok_id", res.Shlok.ID.String()),
	)
}
