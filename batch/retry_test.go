package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/batch"
	"github.com/fwojciec/resumer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		loader := &mock.Loader{
			LoadFn: func(_ context.Context, url string) (resumer.Document, error) {
				attempts++
				return page(t, url, "ok"), nil
			},
		}

		doc, err := batch.LoadWithRetry(context.Background(), loader, "https://a.example", []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, "ok", doc.Title())
		assert.Equal(t, 1, attempts)
	})

	t.Run("gives up after all delays", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		loader := &mock.Loader{
			LoadFn: func(_ context.Context, _ string) (resumer.Document, error) {
				attempts++
				return nil, errors.New("connection reset")
			},
		}

		_, err := batch.LoadWithRetry(context.Background(), loader, "https://a.example", []time.Duration{0, 0, 0})

		require.EqualError(t, err, "connection reset")
		assert.Equal(t, 4, attempts)
	})

	t.Run("does not retry missing pages", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		loader := &mock.Loader{
			LoadFn: func(_ context.Context, _ string) (resumer.Document, error) {
				attempts++
				return nil, resumer.Errorf(resumer.ENOTFOUND, "page not found")
			},
		}

		_, err := batch.LoadWithRetry(context.Background(), loader, "https://a.example", []time.Duration{0, 0, 0})

		assert.Equal(t, resumer.ENOTFOUND, resumer.ErrorCode(err))
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		loader := &mock.Loader{
			LoadFn: func(_ context.Context, _ string) (resumer.Document, error) {
				return nil, errors.New("connection reset")
			},
		}

		start := time.Now()
		_, err := batch.LoadWithRetry(ctx, loader, "https://a.example", []time.Duration{time.Minute})

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})
}
