package gemini_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/resumer/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	t.Run("blank text is free without loading a tokenizer", func(t *testing.T) {
		t.Parallel()

		tc := gemini.NewTokenCounter("no-such-model")

		for _, text := range []string{"", "   ", "\n\t"} {
			n, err := tc.CountTokens(context.Background(), text)
			require.NoError(t, err)
			assert.Zero(t, n)
		}
	})

	t.Run("unsupported model fails on first count", func(t *testing.T) {
		t.Parallel()

		tc := gemini.NewTokenCounter("no-such-model")

		_, err := tc.CountTokens(context.Background(), "Some page text.")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no-such-model")

		_, again := tc.CountTokens(context.Background(), "Other page text.")
		assert.Equal(t, err, again)
	})

	t.Run("canceled context is reported", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gemini.NewTokenCounter(gemini.DefaultModel).CountTokens(ctx, "Some page text.")

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("longer pages cost more tokens", func(t *testing.T) {
		t.Parallel()

		tc := gemini.NewTokenCounter(gemini.DefaultModel)
		paragraph := "The city council approved the annual budget after a long debate. "

		short, err := tc.CountTokens(context.Background(), paragraph)
		require.NoError(t, err)
		long, err := tc.CountTokens(context.Background(), strings.Repeat(paragraph, 10))
		require.NoError(t, err)

		assert.Positive(t, short)
		assert.Greater(t, long, short)
	})
}
