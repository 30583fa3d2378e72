package mock

import (
	"context"

	"github.com/fwojciec/resumer"
)

var _ resumer.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of resumer.HistoryService.
type HistoryService struct {
	CreateEntryFn   func(ctx context.Context, entry *resumer.HistoryEntry) error
	FindEntriesFn   func(ctx context.Context, filter resumer.HistoryFilter) ([]*resumer.HistoryEntry, error)
	DeleteEntriesFn func(ctx context.Context) error
}

func (s *HistoryService) CreateEntry(ctx context.Context, entry *resumer.HistoryEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *HistoryService) FindEntries(ctx context.Context, filter resumer.HistoryFilter) ([]*resumer.HistoryEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *HistoryService) DeleteEntries(ctx context.Context) error {
	return s.DeleteEntriesFn(ctx)
}

var _ resumer.EntryWriter = (*EntryWriter)(nil)

// EntryWriter is a mock implementation of resumer.EntryWriter.
type EntryWriter struct {
	WriteEntryFn func(ctx context.Context, entry *resumer.HistoryEntry) error
}

func (w *EntryWriter) WriteEntry(ctx context.Context, entry *resumer.HistoryEntry) error {
	return w.WriteEntryFn(ctx, entry)
}
