package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/goquery"
	"github.com/fwojciec/resumer/mock"
	resumerslog "github.com/fwojciec/resumer/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs url and title", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, url string) (resumer.Document, error) {
				return goquery.NewDocument("<html><head><title>Hello</title></head><body></body></html>", url)
			},
		}

		doc, err := resumerslog.NewLoggingLoader(inner, logger).Load(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Hello", doc.Title())
		output := buf.String()
		assert.Contains(t, output, "load")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "title=Hello")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, url string) (resumer.Document, error) {
				return nil, resumer.Errorf(resumer.ENOTFOUND, "page not found")
			},
		}

		_, err := resumerslog.NewLoggingLoader(inner, logger).Load(context.Background(), "https://example.com/missing")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "message=page not found")
	})
}
