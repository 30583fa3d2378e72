package resumer

import "unicode/utf8"

// MinContentLength is the length below which extracted content is considered
// insufficient to be worth sending to the LLM.
const MinContentLength = 200

// Stage identifies the extraction strategy that produced the content.
type Stage string

// Stage constants in cascade order.
const (
	StageSelector   Stage = "selector"
	StageParagraphs Stage = "paragraphs"
	StageHeadings   Stage = "headings"
	StageFullText   Stage = "fulltext"
)

// Stages reported by the reference engines.
const (
	StageTrafilatura Stage = "trafilatura"
	StageReadability Stage = "readability"
)

// PageInfo identifies the page the content was extracted from.
// It is read directly from the document.
type PageInfo struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ExtractResult holds the extracted readable text of a page.
type ExtractResult struct {
	Content  string   `json:"content"`
	PageInfo PageInfo `json:"pageInfo"`

	// Stage and Selector are diagnostics describing which strategy won.
	// Selector is set only for StageSelector.
	Stage    Stage  `json:"stage"`
	Selector string `json:"selector,omitempty"`
}

// Extractor extracts the main readable text from a document.
type Extractor interface {
	// Extract never fails. An empty or very short Content is the only
	// "no usable content" signal; see IsInsufficient.
	Extract(doc Document) *ExtractResult
}

// IsInsufficient reports whether the content is too short to be useful.
func IsInsufficient(content string) bool {
	return utf8.RuneCountInString(content) < MinContentLength
}

// HTMLExtractor extracts readable content from raw markup. Reference
// engines work on HTML rather than on a Document.
type HTMLExtractor interface {
	ExtractHTML(rawHTML, pageURL string) (*ExtractResult, error)
}

// Converter converts HTML to markdown.
type Converter interface {
	Convert(html string) (string, error)
}
