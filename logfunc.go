package browserdetails

import (
	"context"
	"log"
	"log/slog"

	"github.com/dmitrymomot/browserdetails/pkg/logger"
)

// LogFunc receives each non-empty details message.
// The context is the request context.
type LogFunc func(ctx context.Context, message string)

// SlogLogger logs messages at info level on an application logger.
func SlogLogger(l *slog.Logger) LogFunc {
	if l == nil {
		return nil
	}
	return func(ctx context.Context, message string) {
		l.InfoContext(ctx, message, logger.Component(component))
	}
}

// StdLogger writes messages to a standard library logger.
func StdLogger(l *log.Logger) LogFunc {
	if l == nil {
		return nil
	}
	return func(_ context.Context, message string) {
		l.Print(message)
	}
}

// ContextLogger logs to the logger stored in the request context by
// logger.WithContext. Requests without one are not logged.
func ContextLogger() LogFunc {
	return func(ctx context.Context, message string) {
		if l, ok := logger.FromContext(ctx); ok {
			l.InfoContext(ctx, message, logger.Component(component))
		}
	}
}

const component = "browser_details"
