package generator

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

//go:embed fallback.yaml
var defaultTable []byte

type tableFile struct {
	Shloks []tableEntry `yaml:"shloks"`
}

type tableEntry struct {
	Text           string `yaml:"text"`
	MeaningHindi   string `yaml:"meaning_hindi"`
	MeaningEnglish string `yaml:"meaning_english"`
	Source         string `yaml:"source"`
	Category       string `yaml:"category"`
}

// LoadTable reads curated shloks from a YAML file. An empty path loads the
// embedded default table.
func LoadTable(path string) ([]domain.Shlok, error) {
	data := defaultTable
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fallback table: %w", err)
		}
		data = b
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a YAML table. Every entry must be complete.
func ParseTable(data []byte) ([]domain.Shlok, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fallback table: %w", err)
	}
	if len(f.Shloks) == 0 {
		return nil, fmt.Errorf("fallback table: %w", domain.NewValidationError("shloks", "at least one entry required"))
	}

	out := make([]domain.Shlok, 0, len(f.Shloks))
	for i, e := range f.Shloks {
		s := domain.Shlok{
			Text:           e.Text,
			MeaningHindi:   e.MeaningHindi,
			MeaningEnglish: e.MeaningEnglish,
			Source:         e.Source,
		}
		if e.Category != "" {
			c, ok := domain.ParseCategory(e.Category)
			if !ok {
				return nil, fmt.Errorf("fallback table entry %d: %w", i, domain.NewValidationError("category", "unknown category "+e.Category))
			}
			s.Category = &c
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("fallback table entry %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Table picks a random curated shlok, preferring the requested category and
// skipping texts published recently.
type Table struct {
	entries     []domain.Shlok
	history     historySource
	historySize int
	log         *slog.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTable creates a Table. history may be nil; rnd nil means a random seed.
func NewTable(log *slog.Logger, entries []domain.Shlok, history historySource, historySize int, rnd *rand.Rand) *Table {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Table{
		entries:     entries,
		history:     history,
		historySize: historySize,
		log:         log.With("generator", "table"),
		rnd:         rnd,
	}
}

// Len returns the number of curated entries.
func (t *Table) Len() int { return len(t.entries) }

// Generate never fails for a non-empty table. Candidates narrow in order:
// requested category and not recent, any category and not recent, any entry.
func (t *Table) Generate(ctx context.Context, req Request) (Result, error) {
	if len(t.entries) == 0 {
		return Result{}, fmt.Errorf("fallback table: %w", domain.ErrNotFound)
	}

	recent := t.recent(ctx)

	var inCategory, fresh []int
	for i, e := range t.entries {
		if isRecent(e.Text, recent) {
			continue
		}
		fresh = append(fresh, i)
		if req.Category == "" || e.CategoryOrEmpty() == req.Category {
			inCategory = append(inCategory, i)
		}
	}

	pool := inCategory
	if len(pool) == 0 {
		pool = fresh
	}

	t.mu.Lock()
	var idx int
	if len(pool) == 0 {
		idx = t.rnd.IntN(len(t.entries))
	} else {
		idx = pool[t.rnd.IntN(len(pool))]
	}
	t.mu.Unlock()

	s := t.entries[idx]
	if s.Category != nil {
		c := *s.Category
		s.Category = &c
	}

	return Result{
		Shlok:    s,
		Outcome:  OutcomeFallback,
		Provider: ProviderTable,
	}, nil
}

func (t *Table) recent(ctx context.Context) []string {
	if t.history == nil || t.historySize <= 0 {
		return nil
	}
	texts, err := t.history.RecentTexts(ctx, t.historySize)
	if err != nil {
		t.log.WarnContext(ctx, "recent history unavailable, table not filtered", slog.String("error", err.Error()))
		return nil
	}
	return texts
}

func isRecent(text string, recent []string) bool {
	for _, r := range recent {
		if domain.SimilarText(text, r) {
			return true
		}
	}
	return false
}
