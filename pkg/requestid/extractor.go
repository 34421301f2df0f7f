package requestid

import (
	"context"
	"log/slog"

	"github.com/bwhmather/validation/pkg/logger"
)

// LoggerExtractor adds "request_id" to records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return slog.String("request_id", requestID), true
		}
		return slog.Attr{}, false
	}
}
