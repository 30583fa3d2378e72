// Package trafilatura runs go-trafilatura as a reference engine, for
// comparing its output with the heuristic cascade.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/resumer"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ resumer.HTMLExtractor = (*Extractor)(nil)

// Extractor extracts main content with trafilatura and renders it through
// a Converter.
type Extractor struct {
	conv resumer.Converter
}

// NewExtractor returns an Extractor rendering content with conv.
func NewExtractor(conv resumer.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// ExtractHTML returns the content trafilatura picks from rawHTML. A page
// with no detectable main content yields an empty Content, not an error.
func (e *Extractor) ExtractHTML(rawHTML, pageURL string) (*resumer.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, resumer.Errorf(resumer.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}

	out := &resumer.ExtractResult{
		PageInfo: resumer.PageInfo{Title: result.Metadata.Title, URL: pageURL},
		Stage:    resumer.StageTrafilatura,
	}
	if result.ContentNode == nil {
		return out, nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(contentHTML) == "" {
		return out, nil
	}
	if out.Content, err = e.conv.Convert(contentHTML); err != nil {
		return nil, err
	}
	return out, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
