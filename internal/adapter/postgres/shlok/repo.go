// Package shlok implements shlok persistence using PostgreSQL.
package shlok

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/daily-shlok/internal/adapter/postgres"
	"github.com/heartmarshall/daily-shlok/internal/domain"
)

// Repo provides shlok persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new shlok repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const createSQL = `
INSERT INTO shloks (shlok, meaning_hindi, meaning_english, source, category, created_at)
VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
RETURNING id, created_at`

const getByIDSQL = `
SELECT id, shlok, meaning_hindi, meaning_english, source, category, created_at
FROM shloks
WHERE id = $1`

// Unlinked rows only; a published shlok is never deleted.
const deleteSQL = `
DELETE FROM shloks s
WHERE s.id = $1
  AND NOT EXISTS (SELECT 1 FROM daily_shloks d WHERE d.shlok_id = s.id)`

// inserted_at is the wall-clock insert time; created_at may be back-dated.
const deleteOrphansSQL = `
DELETE FROM shloks s
WHERE s.inserted_at < $1
  AND NOT EXISTS (SELECT 1 FROM daily_shloks d WHERE d.shlok_id = s.id)`

// Create inserts a shlok and returns it with the store-assigned ID.
// A zero CreatedAt defaults to now().
func (r *Repo) Create(ctx context.Context, s *domain.Shlok) (*domain.Shlok, error) {
	var createdAt *time.Time
	if !s.CreatedAt.IsZero() {
		t := s.CreatedAt.UTC()
		createdAt = &t
	}

	out := *s
	err := r.q.QueryRow(ctx, createSQL,
		s.Text, s.MeaningHindi, s.MeaningEnglish, s.Source, categoryParam(s.Category), createdAt,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "shlok", "create")
	}
	return &out, nil
}

// GetByID returns a shlok by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shlok, error) {
	var (
		s        domain.Shlok
		category pgtype.Text
	)
	err := r.q.QueryRow(ctx, getByIDSQL, id).Scan(
		&s.ID, &s.Text, &s.MeaningHindi, &s.MeaningEnglish, &s.Source, &category, &s.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "shlok", id.String())
	}
	s.Category = CategoryFromText(category)
	return &s, nil
}

// Delete removes an unpublished shlok. It returns domain.ErrNotFound when no
// unlinked shlok with that ID exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "shlok", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shlok %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteOrphans removes shloks no date links to that were inserted before
// insertedBefore, returning the number deleted.
func (r *Repo) DeleteOrphans(ctx context.Context, insertedBefore time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, deleteOrphansSQL, insertedBefore.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete orphans: %w", err)
	}
	return tag.RowsAffected(), nil
}

func categoryParam(c *domain.Category) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

// CategoryFromText converts a nullable category column.
func CategoryFromText(t pgtype.Text) *domain.Category {
	if !t.Valid {
		return nil
	}
	c, ok := domain.ParseCategory(t.String)
	if !ok {
		return nil
	}
	return &c
}
