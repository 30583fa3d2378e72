// Package extract implements the content extraction cascade: an ordered
// chain of strategies that pulls the main readable text out of an arbitrary
// document without site-specific configuration.
package extract

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/resumer"
)

// Thresholds used by the cascade. Lengths are in characters.
const (
	// MinSelectorLength is the length a selector's text must exceed to be accepted.
	MinSelectorLength = 300

	// MinFallbackLength is the length the paragraph stage must exceed to be
	// accepted, and below which the full-text stage takes over.
	MinFallbackLength = resumer.MinContentLength

	MinParagraphLength = 20
	MinHeadingLength   = 5
	MinListItemLength  = 20

	// MinParagraphs is the number of ranked paragraphs always kept when available.
	MinParagraphs = 5

	// ParagraphFraction is the share of ranked paragraphs kept.
	ParagraphFraction = 0.75
)

// Ensure Extractor implements resumer.Extractor at compile time.
var _ resumer.Extractor = (*Extractor)(nil)

// Extractor implements resumer.Extractor. It holds no state and is safe
// for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs the cascade against doc. Stages, in order:
//
//   - selector: the first content selector whose visible text exceeds MinSelectorLength
//   - paragraphs: qualifying paragraphs ranked by length, accepted above MinFallbackLength
//   - headings: headings and list items appended to the paragraph text on shortfall
//   - fulltext: every visible non-noise text node, when still under MinFallbackLength
//
// The winning text is normalized once.
func (e *Extractor) Extract(doc resumer.Document) *resumer.ExtractResult {
	content, stage, selector := cascade(doc)
	return &resumer.ExtractResult{
		Content: Normalize(content),
		PageInfo: resumer.PageInfo{
			Title: doc.Title(),
			URL:   doc.URL(),
		},
		Stage:    stage,
		Selector: selector,
	}
}

func cascade(doc resumer.Document) (string, resumer.Stage, string) {
	for _, selector := range ContentSelectors {
		text := SelectorText(doc, selector)
		if length(text) > MinSelectorLength {
			return text, resumer.StageSelector, selector
		}
	}

	content := ParagraphText(doc)
	if length(content) > MinFallbackLength {
		return content, resumer.StageParagraphs, ""
	}

	stage := resumer.StageParagraphs
	if extra := HeadingText(doc); extra != "" {
		content += extra
		stage = resumer.StageHeadings
	}

	if length(content) < MinFallbackLength {
		return FullText(doc.Body()), resumer.StageFullText, ""
	}
	return content, stage, ""
}

// SelectorText concatenates the visible text of every visible element
// matching selector, each followed by a blank line.
func SelectorText(doc resumer.Document, selector string) string {
	var b strings.Builder
	for _, n := range doc.QueryAll(selector) {
		if !IsVisible(n) {
			continue
		}
		b.WriteString(VisibleText(n))
		b.WriteString("\n\n")
	}
	return b.String()
}

type paragraph struct {
	text   string
	length int
}

// ParagraphText ranks qualifying paragraphs by descending length and
// concatenates the longer of the top MinParagraphs and the top
// ParagraphFraction of them, each followed by a blank line.
func ParagraphText(doc resumer.Document) string {
	var paragraphs []paragraph
	for _, p := range doc.QueryAll("p") {
		text := VisibleText(p)
		if !isContentParagraph(p, text) {
			continue
		}
		paragraphs = append(paragraphs, paragraph{text: text, length: length(text)})
	}

	slices.SortStableFunc(paragraphs, func(a, b paragraph) int {
		return cmp.Compare(b.length, a.length)
	})

	n := len(paragraphs)
	keep := max(min(MinParagraphs, n), int(math.Ceil(float64(n)*ParagraphFraction)))

	var b strings.Builder
	for _, p := range paragraphs[:keep] {
		b.WriteString(p.text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// HeadingText returns visible headings followed by visible list items, in
// document order. List items are prefixed with a bullet.
func HeadingText(doc resumer.Document) string {
	var b strings.Builder
	for _, h := range doc.QueryAll("h1, h2, h3, h4, h5, h6") {
		if !IsVisible(h) {
			continue
		}
		text := VisibleText(h)
		if length(text) < MinHeadingLength {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	for _, li := range doc.QueryAll("li") {
		if !IsVisible(li) {
			continue
		}
		text := VisibleText(li)
		if length(text) < MinListItemLength {
			continue
		}
		b.WriteString("• ")
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// FullText walks the tree under root breadth-first and returns the trimmed
// text of every text node, one per line. Non-rendered elements, invisible
// nodes and noise nodes are skipped together with their subtrees.
func FullText(root resumer.Node) string {
	if root == nil {
		return ""
	}

	var b strings.Builder
	queue := []resumer.Node{root}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if n == nil || SkipTags[n.Tag()] || !IsVisible(n) || IsNoise(n) {
			continue
		}
		if n.IsText() {
			if text := strings.TrimSpace(n.Text()); text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
			continue
		}
		queue = append(queue, n.Children()...)
	}
	return b.String()
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
