// Package balancer picks the category used least in recent publications.
package balancer

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

type usageSource interface {
	// CategoryCounts counts categories over the n most recent publications.
	// Categories that did not occur may be absent from the map.
	CategoryCounts(ctx context.Context, n int) (map[domain.Category]int, error)
}

// Choice is the selected category with the counts it was chosen from.
type Choice struct {
	Category domain.Category
	Counts   map[domain.Category]int
	// Random is set when counts were unavailable and the category was drawn uniformly.
	Random bool
}

// Balancer selects categories to keep topics varied.
type Balancer struct {
	usage usageSource
	log   *slog.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a Balancer. rnd nil means a random seed.
func New(log *slog.Logger, usage usageSource, rnd *rand.Rand) *Balancer {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Balancer{
		usage: usage,
		log:   log.With("service", "balancer"),
		rnd:   rnd,
	}
}

// LeastUsed returns the category with the fewest occurrences among the
// sampleSize most recent publications. Ties go to the earlier category in
// canonical order. When counts cannot be read a uniformly random category
// is returned.
func (b *Balancer) LeastUsed(ctx context.Context, sampleSize int) Choice {
	cats := domain.Categories()

	counts, err := b.usage.CategoryCounts(ctx, sampleSize)
	if err != nil {
		b.mu.Lock()
		c := cats[b.rnd.IntN(len(cats))]
		b.mu.Unlock()

		b.log.WarnContext(ctx, "category counts unavailable, picking at random",
			slog.String("category", string(c)),
			slog.String("error", err.Error()),
		)
		return Choice{Category: c, Random: true}
	}

	full := make(map[domain.Category]int, len(cats))
	best := cats[0]
	for _, c := range cats {
		full[c] = counts[c]
		if full[c] < full[best] {
			best = c
		}
	}
	return Choice{Category: best, Counts: full}
}

// LeastUsedCategory is LeastUsed reduced to the category.
func (b *Balancer) LeastUsedCategory(ctx context.Context, sampleSize int) domain.Category {
	return b.LeastUsed(ctx, sampleSize).Category
}
