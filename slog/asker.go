package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/resumer"
)

// Ensure LoggingSummarizer implements resumer.Summarizer.
var _ resumer.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with debug logging.
type LoggingSummarizer struct {
	next   resumer.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next resumer.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the request shape.
func (s *LoggingSummarizer) Summarize(ctx context.Context, req resumer.SummaryRequest) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"language", string(req.Language),
			"length", string(req.Options.Length),
			"format", string(req.Options.Format),
			"style", string(req.Options.Style),
			"content_chars", utf8.RuneCountInString(req.Content),
			"summary_chars", utf8.RuneCountInString(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, req)
}

// Ensure LoggingAsker implements resumer.Asker.
var _ resumer.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with debug logging.
type LoggingAsker struct {
	next   resumer.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next resumer.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the request shape.
func (a *LoggingAsker) Ask(ctx context.Context, req resumer.AskRequest) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"language", string(req.Language),
			"question", req.Question,
			"turns", len(req.History),
			"content_chars", utf8.RuneCountInString(req.Content),
			"answer_chars", utf8.RuneCountInString(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, req)
}
