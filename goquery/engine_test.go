package goquery_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/goquery"
	"github.com/fwojciec/resumer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallback() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(_ resumer.Document) *resumer.ExtractResult {
			return &resumer.ExtractResult{Content: "fallback", Stage: resumer.StageFullText}
		},
	}
}

func TestEngineExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("passes rendered markup to the engine", func(t *testing.T) {
		t.Parallel()

		var gotHTML, gotURL string
		ext := &goquery.EngineExtractor{
			Engine: &mock.HTMLExtractor{
				ExtractHTMLFn: func(rawHTML, pageURL string) (*resumer.ExtractResult, error) {
					gotHTML, gotURL = rawHTML, pageURL
					return &resumer.ExtractResult{Content: "engine", Stage: resumer.StageReadability}, nil
				},
			},
			Fallback: fallback(),
		}
		doc, err := goquery.NewDocument(`<html><head><title>T</title></head><body><p>Body text</p></body></html>`, "https://example.com/a")
		require.NoError(t, err)

		result := ext.Extract(doc)

		assert.Contains(t, gotHTML, "<p>Body text</p>")
		assert.Equal(t, "https://example.com/a", gotURL)
		assert.Equal(t, "engine", result.Content)
		assert.Equal(t, "T", result.PageInfo.Title)
		assert.Equal(t, resumer.StageReadability, result.Stage)
	})

	t.Run("falls back on engine error", func(t *testing.T) {
		t.Parallel()

		ext := &goquery.EngineExtractor{
			Engine: &mock.HTMLExtractor{
				ExtractHTMLFn: func(_, _ string) (*resumer.ExtractResult, error) {
					return nil, errors.New("boom")
				},
			},
			Fallback: fallback(),
		}
		doc, err := goquery.NewDocument(`<p>x</p>`, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "fallback", ext.Extract(doc).Content)
	})

	t.Run("falls back on empty engine output", func(t *testing.T) {
		t.Parallel()

		ext := &goquery.EngineExtractor{
			Engine: &mock.HTMLExtractor{
				ExtractHTMLFn: func(_, _ string) (*resumer.ExtractResult, error) {
					return &resumer.ExtractResult{}, nil
				},
			},
			Fallback: fallback(),
		}
		doc, err := goquery.NewDocument(`<p>x</p>`, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "fallback", ext.Extract(doc).Content)
	})
}
