package resumer

import (
	"context"
	"time"
)

// MaxHistoryEntries is the number of history entries kept. Older entries
// are discarded as new ones are added.
const MaxHistoryEntries = 50

// EntryKind distinguishes summaries from answered questions.
type EntryKind string

// EntryKind constants.
const (
	KindSummary  EntryKind = "summary"
	KindQuestion EntryKind = "question"
)

// HistoryEntry records a generated summary or answer.
type HistoryEntry struct {
	ID    string    `json:"id"`
	Kind  EntryKind `json:"kind"`
	Title string    `json:"title"`
	URL   string    `json:"url"`

	// Question is set for KindQuestion entries.
	Question string `json:"question,omitempty"`

	// Content is the summary or the answer.
	Content string `json:"content"`

	// ContentHash identifies the extracted page text the entry was generated from.
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *HistoryEntry) Validate() error {
	switch e.Kind {
	case KindSummary:
	case KindQuestion:
		if e.Question == "" {
			return Errorf(EINVALID, "history entry question required")
		}
	default:
		return Errorf(EINVALID, "invalid history entry kind %q", e.Kind)
	}
	if e.URL == "" {
		return Errorf(EINVALID, "history entry URL required")
	}
	if e.Content == "" {
		return Errorf(EINVALID, "history entry content required")
	}
	return nil
}

// HistoryService represents a service for managing history entries.
type HistoryService interface {
	// CreateEntry stores a new entry and discards entries beyond
	// MaxHistoryEntries, oldest first.
	CreateEntry(ctx context.Context, entry *HistoryEntry) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter HistoryFilter) ([]*HistoryEntry, error)

	// DeleteEntries removes all entries.
	DeleteEntries(ctx context.Context) error
}

// HistoryFilter represents a filter for FindEntries.
type HistoryFilter struct {
	Kind *EntryKind `json:"kind"`
	URL  *string    `json:"url"`

	Limit int `json:"limit"`
}

// EntryWriter exports history entries outside the database.
type EntryWriter interface {
	WriteEntry(ctx context.Context, entry *HistoryEntry) error
}

// WriteEntries writes entries to w in order, stopping at the first error.
func WriteEntries(ctx context.Context, w EntryWriter, entries []*HistoryEntry) error {
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.WriteEntry(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
