package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/daily-shlok/internal/auth"
	"github.com/heartmarshall/daily-shlok/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (auth.Identity, error)
}

// Auth attaches the bearer token's identity to the request context.
// Requests without a token pass through anonymously; an invalid token is
// rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := validator.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), id.Subject, id.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin answers 401 for anonymous requests and 403 for non-admin
// identities. It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.SubjectFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "bearer token required")
			return
		}
		if ctxutil.RoleFromCtx(r.Context()) != auth.RoleAdmin {
			writeError(w, http.StatusForbidden, "forbidden", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
