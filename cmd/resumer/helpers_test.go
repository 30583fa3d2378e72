package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/resumer"
	main "github.com/fwojciec/resumer/cmd/resumer"
	"github.com/fwojciec/resumer/extract"
	"github.com/fwojciec/resumer/goquery"
	"github.com/fwojciec/resumer/mock"
	"github.com/stretchr/testify/require"
)

// articleText is long enough for the selector stage.
var articleText = strings.TrimSpace(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 10))

func articleHTML(title string) string {
	return `<html><head><title>` + title + `</title></head><body>
<nav>Home About</nav>
<article><p>` + articleText + `</p></article>
</body></html>`
}

// pageLoader serves an article page for every URL, or a near-empty page for
// URLs containing "empty".
func pageLoader(t *testing.T) *mock.Loader {
	return &mock.Loader{
		LoadFn: func(_ context.Context, url string) (resumer.Document, error) {
			src := articleHTML("Fox Story")
			if strings.Contains(url, "empty") {
				src = `<html><body><p>Hi</p></body></html>`
			}
			doc, err := goquery.NewDocument(src, url)
			require.NoError(t, err)
			return doc, nil
		},
	}
}

// longPageLoader serves an article longer than resumer.MaxContentLength.
func longPageLoader(t *testing.T) *mock.Loader {
	return &mock.Loader{
		LoadFn: func(_ context.Context, url string) (resumer.Document, error) {
			src := `<html><head><title>Long Read</title></head><body><article><p>` +
				strings.Repeat("word ", resumer.MaxContentLength/4) + `</p></article></body></html>`
			doc, err := goquery.NewDocument(src, url)
			require.NoError(t, err)
			return doc, nil
		},
	}
}

func settings(lang resumer.Language) *mock.SettingsService {
	return &mock.SettingsService{
		FindSettingsFn: func(_ context.Context) (*resumer.Settings, error) {
			return &resumer.Settings{Language: lang}, nil
		},
	}
}

// recordingHistory stores created entries in memory.
func recordingHistory(saved *[]*resumer.HistoryEntry) *mock.HistoryService {
	return &mock.HistoryService{
		CreateEntryFn: func(_ context.Context, entry *resumer.HistoryEntry) error {
			*saved = append(*saved, entry)
			return nil
		},
		FindEntriesFn: func(_ context.Context, _ resumer.HistoryFilter) ([]*resumer.HistoryEntry, error) {
			return nil, nil
		},
	}
}

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: extract.NewExtractor(),
		Now: func() time.Time {
			return time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)
		},
	}, stdout, stderr
}
