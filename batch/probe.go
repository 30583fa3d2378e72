package batch

import (
	"context"
	"net/url"
	"sync"
	"unicode/utf8"

	"github.com/fwojciec/resumer"
)

var _ resumer.Loader = (*ProbeLoader)(nil)

// ProbeLoader loads pages over plain HTTP and falls back to a rendering
// browser when JavaScript appears to be needed. The first page of each
// host is loaded both ways and the decision is remembered for the host.
type ProbeLoader struct {
	HTTP      resumer.Loader
	Browser   resumer.Loader
	Extractor resumer.Extractor

	mu      sync.Mutex
	needsJS map[string]bool
}

// Load returns the static document unless it failed to load, yielded
// insufficient content, or the host was found to need rendering.
func (p *ProbeLoader) Load(ctx context.Context, rawURL string) (resumer.Document, error) {
	host := hostOf(rawURL)

	needsJS, probed := p.decision(host)
	if probed && needsJS {
		return p.Browser.Load(ctx, rawURL)
	}

	doc, err := p.HTTP.Load(ctx, rawURL)
	if err != nil {
		if resumer.ErrorCode(err) == resumer.EINVALID {
			return nil, err
		}
		return p.Browser.Load(ctx, rawURL)
	}

	static := p.Extractor.Extract(doc)
	if probed {
		if resumer.IsInsufficient(static.Content) {
			return p.Browser.Load(ctx, rawURL)
		}
		return doc, nil
	}

	rendered, err := p.Browser.Load(ctx, rawURL)
	if err != nil {
		if resumer.IsInsufficient(static.Content) {
			return nil, err
		}
		return doc, nil
	}

	differs := ContentDiffers(static, p.Extractor.Extract(rendered))
	p.record(host, differs)
	if differs || resumer.IsInsufficient(static.Content) {
		return rendered, nil
	}
	return doc, nil
}

func (p *ProbeLoader) decision(host string) (needsJS, probed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	needsJS, probed = p.needsJS[host]
	return needsJS, probed
}

func (p *ProbeLoader) record(host string, needsJS bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.needsJS == nil {
		p.needsJS = make(map[string]bool)
	}
	if _, ok := p.needsJS[host]; !ok {
		p.needsJS[host] = needsJS
	}
}

// ContentDiffers reports whether rendered extraction is significantly
// longer (>50%) than static extraction, suggesting JavaScript adds
// meaningful content.
func ContentDiffers(static, rendered *resumer.ExtractResult) bool {
	staticLen := utf8.RuneCountInString(static.Content)
	renderedLen := utf8.RuneCountInString(rendered.Content)

	if staticLen == 0 {
		return renderedLen > 0
	}
	return float64(renderedLen) > float64(staticLen)*1.5
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
