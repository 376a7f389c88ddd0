package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeDomainError maps a service error onto the HTTP status space.
// Unknown errors are logged and answered with 500.
func writeDomainError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		body := errorBody{Error: errorDetail{Code: "validation", Message: verr.Error()}}
		for _, f := range verr.Errors {
			body.Error.Fields = append(body.Error.Fields, fieldError{Field: f.Field, Message: f.Message})
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, domain.ErrFutureDate), errors.Is(err, domain.ErrNotFound):
		// Future dates are indistinguishable from unpublished ones.
		writeError(w, http.StatusNotFound, "not_found", "shlok not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "forbidden")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful can be written.
		log.DebugContext(ctx, "request canceled", slog.String("error", err.Error()))
	default:
		log.ErrorContext(ctx, "request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
