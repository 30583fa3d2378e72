package goquery

import "github.com/fwojciec/resumer"

var _ resumer.Extractor = (*EngineExtractor)(nil)

// EngineExtractor runs a reference engine on the markup of a Document so it
// can stand in for the cascade. Documents the engine cannot handle fall
// back to Fallback.
type EngineExtractor struct {
	Engine   resumer.HTMLExtractor
	Fallback resumer.Extractor
}

// Extract renders doc and hands it to the engine. Engine errors, foreign
// Document implementations and empty engine output use the fallback.
func (e *EngineExtractor) Extract(doc resumer.Document) *resumer.ExtractResult {
	d, ok := doc.(*Document)
	if !ok {
		return e.Fallback.Extract(doc)
	}

	src, err := d.HTML()
	if err != nil {
		return e.Fallback.Extract(doc)
	}

	result, err := e.Engine.ExtractHTML(src, d.URL())
	if err != nil || result.Content == "" {
		return e.Fallback.Extract(doc)
	}
	if result.PageInfo.Title == "" {
		result.PageInfo.Title = d.Title()
	}
	return result
}
