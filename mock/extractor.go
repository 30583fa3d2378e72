package mock

import "github.com/fwojciec/resumer"

var _ resumer.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of resumer.Extractor.
type Extractor struct {
	ExtractFn func(doc resumer.Document) *resumer.ExtractResult
}

func (e *Extractor) Extract(doc resumer.Document) *resumer.ExtractResult {
	return e.ExtractFn(doc)
}

var _ resumer.HTMLExtractor = (*HTMLExtractor)(nil)

// HTMLExtractor is a mock implementation of resumer.HTMLExtractor.
type HTMLExtractor struct {
	ExtractHTMLFn func(rawHTML, pageURL string) (*resumer.ExtractResult, error)
}

func (e *HTMLExtractor) ExtractHTML(rawHTML, pageURL string) (*resumer.ExtractResult, error) {
	return e.ExtractHTMLFn(rawHTML, pageURL)
}

var _ resumer.Converter = (*Converter)(nil)

// Converter is a mock implementation of resumer.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
