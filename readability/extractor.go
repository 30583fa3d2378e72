// Package readability runs go-readability as a reference engine.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/resumer"
	"github.com/go-shiori/go-readability"
)

var _ resumer.HTMLExtractor = (*Extractor)(nil)

// Extractor extracts the article with Mozilla's Readability algorithm and
// renders it through a Converter.
type Extractor struct {
	conv resumer.Converter
}

// NewExtractor returns an Extractor rendering content with conv.
func NewExtractor(conv resumer.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// ExtractHTML returns the article readability finds in rawHTML. Relative
// links are resolved against pageURL when it parses.
func (e *Extractor) ExtractHTML(rawHTML, pageURL string) (*resumer.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, resumer.Errorf(resumer.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	out := &resumer.ExtractResult{
		PageInfo: resumer.PageInfo{Title: article.Title, URL: pageURL},
		Stage:    resumer.StageReadability,
	}
	if strings.TrimSpace(article.Content) == "" {
		return out, nil
	}
	if out.Content, err = e.conv.Convert(article.Content); err != nil {
		return nil, err
	}
	return out, nil
}
