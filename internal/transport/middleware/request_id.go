package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-shlok/pkg/ctxutil"
)

const maxRequestIDLen = 128

// RequestID propagates X-Request-Id or assigns a new UUID when the header
// is missing or oversized.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
