package resumer

import (
	"context"
	"unicode/utf8"
)

// MaxContentLength is the number of characters of page content sent to the LLM.
const MaxContentLength = 25000

// Language is the language LLM responses are written in.
type Language string

// Supported languages.
const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
)

// Valid reports whether the language is supported.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageIndonesian
}

// SummaryLength controls how long a summary is.
type SummaryLength string

// SummaryLength constants.
const (
	LengthShort  SummaryLength = "short"
	LengthMedium SummaryLength = "medium"
	LengthLong   SummaryLength = "long"
)

// SummaryFormat controls the layout of a summary.
type SummaryFormat string

// SummaryFormat constants.
const (
	FormatDefault    SummaryFormat = "default"
	FormatParagraphs SummaryFormat = "paragraphs"
	FormatBullets    SummaryFormat = "bullets"
)

// SummaryStyle controls the register of a summary.
type SummaryStyle string

// SummaryStyle constants.
const (
	StyleStandard       SummaryStyle = "standard"
	StyleFormal         SummaryStyle = "formal"
	StyleSimple         SummaryStyle = "simple"
	StyleConversational SummaryStyle = "conversational"
)

// SummaryOptions customizes a summary. Zero or unknown values fall back to
// medium length, default format and standard style.
type SummaryOptions struct {
	Length SummaryLength
	Format SummaryFormat
	Style  SummaryStyle
}

// SummaryRequest is the input to Summarizer.Summarize.
type SummaryRequest struct {
	Content  string
	Language Language
	Options  SummaryOptions
}

// Summarizer generates a summary of page content.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (string, error)
}

// Turn is one previous question/answer exchange about the same page.
type Turn struct {
	Question string
	Answer   string
}

// AskRequest is the input to Asker.Ask.
type AskRequest struct {
	Content  string
	Question string
	Language Language

	// History holds earlier exchanges, oldest first.
	History []Turn

	// StyleInstruction is free-form guidance on how to answer.
	StyleInstruction string
}

// Validate returns an error if the request contains invalid fields.
func (r *AskRequest) Validate() error {
	if r.Question == "" {
		return Errorf(EINVALID, "question required")
	}
	return nil
}

// Asker answers natural language questions about page content.
type Asker interface {
	Ask(ctx context.Context, req AskRequest) (string, error)
}

// TruncateContent limits content to max characters, appending "..." when
// anything was cut.
func TruncateContent(content string, max int) string {
	if utf8.RuneCountInString(content) <= max {
		return content
	}
	runes := []rune(content)
	return string(runes[:max]) + "..."
}

// TokenCounter counts the tokens a model would see for a piece of text.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
