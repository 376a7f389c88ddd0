package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/publication"
)

// publicationService defines the read and publish operations the handler needs.
type publicationService interface {
	Today(ctx context.Context) (*domain.PublishedShlok, error)
	ForDate(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error)
	History(ctx context.Context, limit, offset int) (*publication.HistoryPage, error)
	PublishForDate(ctx context.Context, date domain.Date) (*publication.PublishResult, error)
	CurrentDate() domain.Date
}

// ShlokHandler serves the public shlok API and the admin publish trigger.
type ShlokHandler struct {
	svc publicationService
	log *slog.Logger
}

// NewShlokHandler creates a ShlokHandler.
func NewShlokHandler(svc publicationService, logger *slog.Logger) *ShlokHandler {
	return &ShlokHandler{svc: svc, log: logger.With("handler", "shlok")}
}

type shlokResponse struct {
	ID             uuid.UUID `json:"id"`
	Date           string    `json:"date"`
	Shlok          string    `json:"shlok"`
	MeaningHindi   string    `json:"meaningHindi"`
	MeaningEnglish string    `json:"meaningEnglish"`
	Source         string    `json:"source"`
	Category       *string   `json:"category,omitempty"`
	PublishedAt    time.Time `json:"publishedAt"`
}

type historyResponse struct {
	Items  []shlokResponse `json:"items"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type publishResponse struct {
	Status     string        `json:"status"`
	Generation string        `json:"generation"`
	Category   string        `json:"category,omitempty"`
	AIAttempts int           `json:"aiAttempts"`
	Shlok      shlokResponse `json:"shlok"`
}

func toShlokResponse(p *domain.PublishedShlok) shlokResponse {
	resp := shlokResponse{
		ID:             p.ID,
		Date:           p.Date.String(),
		Shlok:          p.Text,
		MeaningHindi:   p.MeaningHindi,
		MeaningEnglish: p.MeaningEnglish,
		Source:         p.Source,
		PublishedAt:    p.PublishedAt(),
	}
	if p.Category != nil {
		c := string(*p.Category)
		resp.Category = &c
	}
	return resp
}

// Today returns today's shlok, publishing it on first access.
// GET /api/shlok/today
func (h *ShlokHandler) Today(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Today(r.Context())
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toShlokResponse(p))
}

// ByDate returns the shlok published for a date.
// GET /api/shlok/{date}
func (h *ShlokHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(r.PathValue("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	p, err := h.svc.ForDate(r.Context(), date)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toShlokResponse(p))
}

// History lists published shloks, newest first.
// GET /api/shloks?limit=30&offset=0
func (h *ShlokHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, ok := intParam(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := intParam(w, r, "offset")
	if !ok {
		return
	}

	page, err := h.svc.History(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	resp := historyResponse{Items: make([]shlokResponse, 0, len(page.Items)), Limit: page.Limit, Offset: page.Offset}
	for i := range page.Items {
		resp.Items = append(resp.Items, toShlokResponse(&page.Items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Publish publishes or back-fills a date. Without ?date it publishes today.
// POST /api/admin/publish?date=YYYY-MM-DD
func (h *ShlokHandler) Publish(w http.ResponseWriter, r *http.Request) {
	date := h.svc.CurrentDate()
	if v := r.URL.Query().Get("date"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			return
		}
		date = d
	}

	res, err := h.svc.PublishForDate(r.Context(), date)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	status := http.StatusOK
	if res.Status == publication.StatusPublished {
		status = http.StatusCreated
	}
	writeJSON(w, status, publishResponse{
		Status:     string(res.Status),
		Generation: string(res.Generation),
		Category:   string(res.Category),
		AIAttempts: res.AIAttempts,
		Shlok:      toShlokResponse(&res.Shlok),
	})
}

// intParam reads an optional integer query parameter; absent means 0.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_"+name, name+" must be an integer")
		return 0, false
	}
	return n, true
}
