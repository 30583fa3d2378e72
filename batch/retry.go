package batch

import (
	"context"
	"time"

	"github.com/fwojciec/resumer"
)

// DefaultRetryDelays returns the backoff delays for load retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// LoadWithRetry loads url, retrying after each delay in turn. Errors that
// cannot succeed on retry (invalid or missing pages) are returned at once.
func LoadWithRetry(ctx context.Context, loader resumer.Loader, url string, delays []time.Duration) (resumer.Document, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := loader.Load(ctx, url)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}

func retryable(err error) bool {
	switch resumer.ErrorCode(err) {
	case resumer.EINVALID, resumer.ENOTFOUND:
		return false
	}
	return true
}
