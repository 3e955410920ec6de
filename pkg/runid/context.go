package runid

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// New returns a fresh run identifier.
func New() string {
	return uuid.NewString()
}

func WithContext(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, contextKey{}, runID)
}

// Ensure returns ctx unchanged when it already carries a run id, otherwise
// a child context with a new one.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromContext(ctx); id != "" {
		return ctx, id
	}
	id := New()
	return WithContext(ctx, id), id
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	runID, ok := ctx.Value(contextKey{}).(string)
	if !ok {
		return ""
	}
	return runID
}
