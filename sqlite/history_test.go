package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func summary(url, content string) *resumer.HistoryEntry {
	return &resumer.HistoryEntry{
		Kind:    resumer.KindSummary,
		Title:   "Title of " + url,
		URL:     url,
		Content: content,
	}
}

func question(url, q, answer string) *resumer.HistoryEntry {
	return &resumer.HistoryEntry{
		Kind:     resumer.KindQuestion,
		URL:      url,
		Question: q,
		Content:  answer,
	}
}

func TestHistoryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		entry := summary("https://example.com", "A summary.")

		err := svc.CreateEntry(context.Background(), entry)

		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))

		err := svc.CreateEntry(context.Background(), question("https://example.com", "", "answer"))

		require.Error(t, err)
		assert.Equal(t, resumer.EINVALID, resumer.ErrorCode(err))
	})

	t.Run("round trips all fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		ctx := context.Background()
		entry := question("https://example.com/a", "Why?", "Because.")
		entry.Title = "Page A"
		entry.ContentHash = "abc123"
		require.NoError(t, svc.CreateEntry(ctx, entry))

		entries, err := svc.FindEntries(ctx, resumer.HistoryFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		got := entries[0]
		assert.Equal(t, entry.ID, got.ID)
		assert.Equal(t, resumer.KindQuestion, got.Kind)
		assert.Equal(t, "Page A", got.Title)
		assert.Equal(t, "https://example.com/a", got.URL)
		assert.Equal(t, "Why?", got.Question)
		assert.Equal(t, "Because.", got.Content)
		assert.Equal(t, "abc123", got.ContentHash)
		assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("keeps only the newest entries", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		ctx := context.Background()
		for i := range resumer.MaxHistoryEntries + 5 {
			require.NoError(t, svc.CreateEntry(ctx, summary(fmt.Sprintf("https://example.com/%d", i), "s")))
		}

		entries, err := svc.FindEntries(ctx, resumer.HistoryFilter{})

		require.NoError(t, err)
		require.Len(t, entries, resumer.MaxHistoryEntries)
		assert.Equal(t, fmt.Sprintf("https://example.com/%d", resumer.MaxHistoryEntries+4), entries[0].URL)
		assert.Equal(t, "https://example.com/5", entries[len(entries)-1].URL)
	})
}

func TestHistoryService_FindEntries(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.HistoryService {
		t.Helper()
		svc := sqlite.NewHistoryService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateEntry(ctx, summary("https://a.example", "summary a")))
		require.NoError(t, svc.CreateEntry(ctx, question("https://a.example", "q1", "answer 1")))
		require.NoError(t, svc.CreateEntry(ctx, summary("https://b.example", "summary b")))
		require.NoError(t, svc.CreateEntry(ctx, question("https://a.example", "q2", "answer 2")))
		return svc
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		entries, err := seed(t).FindEntries(context.Background(), resumer.HistoryFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 4)
		assert.Equal(t, "answer 2", entries[0].Content)
		assert.Equal(t, "summary a", entries[3].Content)
	})

	t.Run("filters by kind and url", func(t *testing.T) {
		t.Parallel()

		kind := resumer.KindQuestion
		url := "https://a.example"

		entries, err := seed(t).FindEntries(context.Background(), resumer.HistoryFilter{Kind: &kind, URL: &url})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "q2", entries[0].Question)
		assert.Equal(t, "q1", entries[1].Question)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		entries, err := seed(t).FindEntries(context.Background(), resumer.HistoryFilter{Limit: 1})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "answer 2", entries[0].Content)
	})

	t.Run("empty database", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))

		entries, err := svc.FindEntries(context.Background(), resumer.HistoryFilter{})

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestHistoryService_DeleteEntries(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewHistoryService(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, svc.CreateEntry(ctx, summary("https://a.example", "summary a")))

	require.NoError(t, svc.DeleteEntries(ctx))

	entries, err := svc.FindEntries(ctx, resumer.HistoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
