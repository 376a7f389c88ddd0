package publication

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

// memStore mimics the two tables with a unique date link: the first Link
// for a date wins and later ones get the existing row back.
type memStore struct {
	mu       sync.Mutex
	shloks   map[uuid.UUID]domain.Shlok
	inserted map[uuid.UUID]time.Time
	links    map[domain.Date]domain.DailyShlok

	// now stamps inserts, like the inserted_at column default.
	now func() time.Time

	// afterCreate, when set, runs outside the lock after each Create.
	afterCreate func()
}

func newMemStore() *memStore {
	return &memStore{
		shloks:   make(map[uuid.UUID]domain.Shlok),
		inserted: make(map[uuid.UUID]time.Time),
		links:    make(map[domain.Date]domain.DailyShlok),
		now:      time.Now,
	}
}

func (m *memStore) Create(_ context.Context, s *domain.Shlok) (*domain.Shlok, error) {
	m.mu.Lock()
	out := *s
	out.ID = uuid.New()
	m.shloks[out.ID] = out
	m.inserted[out.ID] = m.now()
	m.mu.Unlock()
	if m.afterCreate != nil {
		m.afterCreate()
	}
	return &out, nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shloks[id]; !ok {
		return domain.ErrNotFound
	}
	for _, l := range m.links {
		if l.ShlokID == id {
			return domain.ErrAlreadyExists
		}
	}
	delete(m.shloks, id)
	delete(m.inserted, id)
	return nil
}

func (m *memStore) DeleteOrphans(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	linked := make(map[uuid.UUID]bool, len(m.links))
	for _, l := range m.links {
		linked[l.ShlokID] = true
	}
	var n int64
	for id := range m.shloks {
		if !linked[id] && m.inserted[id].Before(before) {
			delete(m.shloks, id)
			delete(m.inserted, id)
			n++
		}
	}
	return n, nil
}

func (m *memStore) GetByDate(_ context.Context, date domain.Date) (*domain.PublishedShlok, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.links[date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.PublishedShlok{Shlok: m.shloks[l.ShlokID], Date: date}, nil
}

func (m *memStore) Link(_ context.Context, date domain.Date, shlokID uuid.UUID) (*domain.DailyShlok, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.links[date]; ok {
		return &l, nil
	}
	l := domain.DailyShlok{ID: uuid.New(), Date: date, ShlokID: shlokID, CreatedAt: time.Now()}
	m.links[date] = l
	return &l, nil
}

func (m *memStore) List(_ context.Context, onOrBefore domain.Date, limit, offset int) ([]domain.PublishedShlok, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.PublishedShlok
	for d, l := range m.links {
		if !d.After(onOrBefore) {
			out = append(out, domain.PublishedShlok{Shlok: m.shloks[l.ShlokID], Date: d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) counts() (shloks, links int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.shloks), len(m.links)
}
