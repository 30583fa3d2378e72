package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/resumer"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ resumer.HistoryService = (*HistoryService)(nil)

// HistoryService implements resumer.HistoryService using SQLite.
// Insertion order defines recency.
type HistoryService struct {
	db  *DB
	max int
}

// NewHistoryService creates a new HistoryService keeping
// resumer.MaxHistoryEntries entries.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db, max: resumer.MaxHistoryEntries}
}

// CreateEntry stores entry with a generated ID and timestamp, then discards
// the oldest entries beyond the retention limit.
func (s *HistoryService) CreateEntry(ctx context.Context, entry *resumer.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO history (id, kind, title, url, question, content, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, string(entry.Kind), entry.Title, entry.URL, entry.Question, entry.Content,
		entry.ContentHash, formatTime(entry.CreatedAt)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM history
		WHERE rowid NOT IN (SELECT rowid FROM history ORDER BY rowid DESC LIMIT ?)
	`, s.max); err != nil {
		return err
	}

	return tx.Commit()
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *HistoryService) FindEntries(ctx context.Context, filter resumer.HistoryFilter) ([]*resumer.HistoryEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, title, url, question, content, content_hash, created_at FROM history WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY rowid DESC")
	appendLimit(&query, &args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*resumer.HistoryEntry
	for rows.Next() {
		var entry resumer.HistoryEntry
		var kind, createdAt string

		if err := rows.Scan(&entry.ID, &kind, &entry.Title, &entry.URL, &entry.Question,
			&entry.Content, &entry.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		entry.Kind = resumer.EntryKind(kind)

		if entry.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// DeleteEntries removes all entries.
func (s *HistoryService) DeleteEntries(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM history")
	return err
}
