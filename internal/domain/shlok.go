package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Shlok is an immutable generated verse with its two meanings.
// ID is assigned by the store; it is uuid.Nil until persisted.
type Shlok struct {
	ID             uuid.UUID
	Text           string
	MeaningHindi   string
	MeaningEnglish string
	Source         string
	Category       *Category
	CreatedAt      time.Time
}

// Validate trims all text fields in place and reports every empty one.
func (s *Shlok) Validate() error {
	s.Text = strings.TrimSpace(s.Text)
	s.MeaningHindi = strings.TrimSpace(s.MeaningHindi)
	s.MeaningEnglish = strings.TrimSpace(s.MeaningEnglish)
	s.Source = strings.TrimSpace(s.Source)

	var errs []FieldError
	for _, f := range []struct {
		name  string
		value string
	}{
		{"text", s.Text},
		{"meaning_hindi", s.MeaningHindi},
		{"meaning_english", s.MeaningEnglish},
		{"source", s.Source},
	} {
		if f.value == "" {
			errs = append(errs, FieldError{Field: f.name, Message: "required"})
		}
	}
	if s.Category != nil && !s.Category.IsValid() {
		errs = append(errs, FieldError{Field: "category", Message: "unknown category"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// CategoryOrEmpty returns the category or "" when unset.
func (s *Shlok) CategoryOrEmpty() Category {
	if s.Category == nil {
		return ""
	}
	return *s.Category
}

// DailyShlok links one shlok to one calendar date.
// The store allows at most one row per date.
type DailyShlok struct {
	ID        uuid.UUID
	Date      Date
	ShlokID   uuid.UUID
	CreatedAt time.Time
}

// PublishedShlok is a shlok together with the date it was published for.
// This is the shape readers receive.
type PublishedShlok struct {
	Shlok
	Date Date
}

// PublishedAt is the normalized publication instant.
func (p *PublishedShlok) PublishedAt() time.Time {
	return p.CreatedAt
}

// CategoryPtr returns a pointer to c, for optional category fields.
func CategoryPtr(c Category) *Category {
	return &c
}
