package rest

import (
	"net/http"

	"github.com/heartmarshall/daily-shlok/internal/transport/middleware"
)

// NewRouter registers the API routes. The admin routes require an admin
// identity, which middleware.Auth must attach earlier in the chain.
func NewRouter(shloks *ShlokHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/shlok/today", shloks.Today)
	mux.HandleFunc("GET /api/shlok/{date}", shloks.ByDate)
	mux.HandleFunc("GET /api/shloks", shloks.History)
	mux.Handle("POST /api/admin/publish", middleware.RequireAdmin(http.HandlerFunc(shloks.Publish)))

	return mux
}
