package runid

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if runID := FromContext(ctx); runID != "" {
			return slog.String("run_id", runID), true
		}
		return slog.Attr{}, false
	}
}
