package mock

import (
	"context"

	"github.com/fwojciec/resumer"
)

var _ resumer.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of resumer.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ resumer.Loader = (*Loader)(nil)

// Loader is a mock implementation of resumer.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, url string) (resumer.Document, error)
}

func (l *Loader) Load(ctx context.Context, url string) (resumer.Document, error) {
	return l.LoadFn(ctx, url)
}
