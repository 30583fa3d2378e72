package goquery

import (
	"context"

	"github.com/fwojciec/resumer"
)

// Ensure Loader implements resumer.Loader.
var _ resumer.Loader = (*Loader)(nil)

// Loader fetches HTML and parses it into a Document.
type Loader struct {
	Fetcher resumer.Fetcher
}

// NewLoader creates a Loader that fetches pages with f.
func NewLoader(f resumer.Fetcher) *Loader {
	return &Loader{Fetcher: f}
}

// Load fetches url and parses the response.
func (l *Loader) Load(ctx context.Context, url string) (resumer.Document, error) {
	html, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return NewDocument(html, url)
}
