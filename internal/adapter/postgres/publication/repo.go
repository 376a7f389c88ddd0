// Package publication implements the date-to-shlok link store using
// PostgreSQL. The unique publish_date constraint is what keeps one shlok
// per date under concurrent publishers.
package publication

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/daily-shlok/internal/adapter/postgres"
	"github.com/heartmarshall/daily-shlok/internal/adapter/postgres/shlok"
	"github.com/heartmarshall/daily-shlok/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var publishedColumns = []string{
	"s.id", "s.shlok", "s.meaning_hindi", "s.meaning_english", "s.source", "s.category", "s.created_at",
	"d.publish_date",
}

// Repo provides publication persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new publication repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const getByDateSQL = `
SELECT s.id, s.shlok, s.meaning_hindi, s.meaning_english, s.source, s.category, s.created_at,
       d.publish_date
FROM daily_shloks d
JOIN shloks s ON s.id = d.shlok_id
WHERE d.publish_date = $1`

// The no-op update makes RETURNING yield the surviving row on conflict.
const linkSQL = `
INSERT INTO daily_shloks (publish_date, shlok_id)
VALUES ($1, $2)
ON CONFLICT (publish_date) DO UPDATE SET shlok_id = daily_shloks.shlok_id
RETURNING id, publish_date, shlok_id, created_at`

const recentTextsSQL = `
SELECT s.shlok
FROM daily_shloks d
JOIN shloks s ON s.id = d.shlok_id
ORDER BY d.publish_date DESC
LIMIT $1`

// GetByDate returns the shlok published for date or domain.ErrNotFound.
func (r *Repo) GetByDate(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error) {
	p, err := scanPublished(r.q.QueryRow(ctx, getByDateSQL, date.Time()))
	if err != nil {
		return nil, postgres.MapError(err, "daily_shlok", date.String())
	}
	return &p, nil
}

// Link atomically links date to shlokID. When date is already linked the
// existing link is returned unchanged, so callers compare ShlokID to learn
// whether they won.
func (r *Repo) Link(ctx context.Context, date domain.Date, shlokID uuid.UUID) (*domain.DailyShlok, error) {
	var (
		d   domain.DailyShlok
		day time.Time
	)
	err := r.q.QueryRow(ctx, linkSQL, date.Time(), shlokID).Scan(&d.ID, &day, &d.ShlokID, &d.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "daily_shlok", date.String())
	}
	d.Date = domain.DateFromTime(day)
	return &d, nil
}

// List returns published shloks dated on or before onOrBefore, newest first.
func (r *Repo) List(ctx context.Context, onOrBefore domain.Date, limit, offset int) ([]domain.PublishedShlok, error) {
	query, args, err := psql.Select(publishedColumns...).
		From("daily_shloks d").
		Join("shloks s ON s.id = d.shlok_id").
		Where(sq.LtOrEq{"d.publish_date": onOrBefore.Time()}).
		OrderBy("d.publish_date DESC").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PublishedShlok, 0, limit)
	for rows.Next() {
		p, err := scanPublished(rows)
		if err != nil {
			return nil, fmt.Errorf("scan publication: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	return out, nil
}

// RecentTexts returns the texts of the n most recent publications, newest first.
func (r *Repo) RecentTexts(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	rows, err := r.q.Query(ctx, recentTextsSQL, n)
	if err != nil {
		return nil, fmt.Errorf("recent texts: %w", err)
	}
	texts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("recent texts: %w", err)
	}
	return texts, nil
}

// CategoryCounts counts categories over the n most recent publications.
// Uncategorised shloks are not counted.
func (r *Repo) CategoryCounts(ctx context.Context, n int) (map[domain.Category]int, error) {
	counts := make(map[domain.Category]int)
	if n <= 0 {
		return counts, nil
	}

	recent := sq.Select("s.category").
		From("daily_shloks d").
		Join("shloks s ON s.id = d.shlok_id").
		OrderBy("d.publish_date DESC").
		Limit(uint64(n))

	query, args, err := psql.Select("category", "count(*)").
		FromSelect(recent, "recent").
		Where(sq.NotEq{"category": nil}).
		GroupBy("category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category counts query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		if c, ok := domain.ParseCategory(name); ok {
			counts[c] = int(count)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	return counts, nil
}

func scanPublished(row pgx.Row) (domain.PublishedShlok, error) {
	var (
		p        domain.PublishedShlok
		category pgtype.Text
		day      time.Time
	)
	err := row.Scan(
		&p.ID, &p.Text, &p.MeaningHindi, &p.MeaningEnglish, &p.Source, &category, &p.CreatedAt,
		&day,
	)
	if err != nil {
		return domain.PublishedShlok{}, err
	}
	p.Category = shlok.CategoryFromText(category)
	p.Date = domain.DateFromTime(day)
	return p, nil
}
