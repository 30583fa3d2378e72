package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/resumer"
)

// Ensure LoggingLoader implements resumer.Loader.
var _ resumer.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with debug logging.
type LoggingLoader struct {
	next   resumer.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next resumer.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, url string) (doc resumer.Document, err error) {
	defer func(begin time.Time) {
		title := ""
		if doc != nil {
			title = doc.Title()
		}
		l.logger.Info("load",
			"url", url,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}
