package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/resumer"
)

// Ensure LoggingExtractor implements resumer.Extractor.
var _ resumer.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs which stage produced the
// content.
type LoggingExtractor struct {
	next   resumer.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next resumer.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc resumer.Document) *resumer.ExtractResult {
	begin := time.Now()
	result := e.next.Extract(doc)
	attrs := []any{
		"url", result.PageInfo.URL,
		"stage", string(result.Stage),
		"chars", utf8.RuneCountInString(result.Content),
		"insufficient", resumer.IsInsufficient(result.Content),
		"duration", time.Since(begin),
	}
	if result.Selector != "" {
		attrs = append(attrs, "selector", result.Selector)
	}
	e.logger.Info("extract", attrs...)
	return result
}
