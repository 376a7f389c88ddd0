package ctxutil

import "context"

type ctxKey string

const (
	subjectKey   ctxKey = "subject"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the authenticated subject and role in the context.
func WithIdentity(ctx context.Context, subject, role string) context.Context {
	ctx = context.WithValue(ctx, subjectKey, subject)
	return context.WithValue(ctx, roleKey, role)
}

// SubjectFromCtx extracts the authenticated subject.
// Returns "" and false if the request is anonymous.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// RoleFromCtx returns the authenticated role, or "".
func RoleFromCtx(ctx context.Context) string {
	r, _ := ctx.Value(roleKey).(string)
	return r
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
