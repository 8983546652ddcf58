package tracker

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/gatrack/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor that adds a "utm" group
// with the visitor and session IDs of the current request.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		attrs := make([]slog.Attr, 0, 2)
		// only read an ID that already exists; reading would generate one
		if v, ok := VisitorFromContext(ctx); ok && v.HasUniqueID() {
			attrs = append(attrs, logger.VisitorID(v.UniqueID()))
		}
		if s, ok := SessionFromContext(ctx); ok {
			attrs = append(attrs, logger.SessionID(s.SessionID()))
		}
		if len(attrs) == 0 {
			return slog.Attr{}, false
		}
		return logger.Group("utm", attrs...), true
	}
}
