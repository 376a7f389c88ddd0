package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedShlok inserts an unlinked shlok with a unique text.
func SeedShlok(t *testing.T, pool *pgxpool.Pool, category *domain.Category) domain.Shlok {
	t.Helper()

	s := domain.Shlok{
		Text:           "धर्मो रक्षति रक्षितः " + uniqueSuffix(),
		MeaningHindi:   "धर्म की रक्षा करने वाले की धर्म रक्षा करता है",
		MeaningEnglish: "Dharma protects those who protect it",
		Source:         "Manusmriti 8.15",
		Category:       category,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	var cat *string
	if category != nil {
		c := string(*category)
		cat = &c
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO shloks (shlok, meaning_hindi, meaning_english, source, category, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		s.Text, s.MeaningHindi, s.MeaningEnglish, s.Source, cat, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedShlok: %v", err)
	}
	return s
}

// SeedPublication inserts a shlok and links it to date.
func SeedPublication(t *testing.T, pool *pgxpool.Pool, date domain.Date, category *domain.Category) domain.PublishedShlok {
	t.Helper()

	s := SeedShlok(t, pool, category)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO daily_shloks (publish_date, shlok_id) VALUES ($1, $2)`,
		date.Time(), s.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPublication %s: %v", date, err)
	}
	return domain.PublishedShlok{Shlok: s, Date: date}
}

// Backdate moves a shlok's insert time into the past.
func Backdate(t *testing.T, pool *pgxpool.Pool, id uuid.UUID, age time.Duration) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`UPDATE shloks SET inserted_at = inserted_at - make_interval(secs => $2) WHERE id = $1`, id, age.Seconds())
	if err != nil {
		t.Fatalf("testhelper: Backdate: %v", err)
	}
}
