package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/resumer"
	"google.golang.org/genai"
)

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant that summarizes webpages and answers questions about them. Base your response only on the webpage content provided.",
			}},
		},
		Temperature: &temp,
	}
}

var lengthInstructions = map[resumer.SummaryLength]string{
	resumer.LengthShort:  "Create a very brief and concise summary, maximum 3-4 sentences.",
	resumer.LengthMedium: "Create a moderate-length summary with the key points.",
	resumer.LengthLong:   "Create a comprehensive and detailed summary that covers all important aspects.",
}

var formatInstructions = map[resumer.SummaryFormat]string{
	resumer.FormatDefault:    "Use a mix of paragraphs and bullet points where appropriate.",
	resumer.FormatParagraphs: "Format the summary as paragraphs only, with clear topic sentences.",
	resumer.FormatBullets:    "Format the summary as bullet points, with each point representing a key idea.",
}

var styleInstructions = map[resumer.SummaryStyle]string{
	resumer.StyleStandard:       "Use a standard, neutral writing style.",
	resumer.StyleFormal:         "Use a formal, academic writing style with sophisticated vocabulary.",
	resumer.StyleSimple:         "Use simple language that is easy to understand, avoiding complex terms.",
	resumer.StyleConversational: "Use a conversational tone as if explaining to a friend.",
}

// lookup returns m[key], or m[fallback] for unknown keys.
func lookup[K comparable](m map[K]string, key, fallback K) string {
	if v, ok := m[key]; ok {
		return v
	}
	return m[fallback]
}

func languagePhrase(l resumer.Language) string {
	if l == resumer.LanguageIndonesian {
		return "in Bahasa Indonesia"
	}
	return "in English"
}

// BuildSummaryPrompt builds the prompt for a summary request. Content is
// embedded as given; callers truncate it.
func BuildSummaryPrompt(req resumer.SummaryRequest) string {
	opts := req.Options
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the following webpage content %s.\n", languagePhrase(req.Language))
	sb.WriteString(lookup(lengthInstructions, opts.Length, resumer.LengthMedium) + "\n")
	sb.WriteString(lookup(formatInstructions, opts.Format, resumer.FormatDefault) + "\n")
	sb.WriteString(lookup(styleInstructions, opts.Style, resumer.StyleStandard) + "\n")
	sb.WriteString("Ensure the summary captures the main points and key information:\n\n")
	sb.WriteString(req.Content)
	return sb.String()
}

// BuildQuestionPrompt builds the prompt for a question. With history, the
// previous exchanges are included for context.
func BuildQuestionPrompt(req resumer.AskRequest) string {
	lang := languagePhrase(req.Language)

	var sb strings.Builder
	if len(req.History) > 0 {
		sb.WriteString("This is a conversation about a webpage. Here's the previous conversation for context:\n\n")
		sb.WriteString(FormatTurns(req.History))
		sb.WriteString("\n\nNow the user has a new question.")
		if req.StyleInstruction != "" {
			sb.WriteString(" " + req.StyleInstruction)
		}
		fmt.Fprintf(&sb, "\nBased on the following webpage content, please answer this question %s:\n\n", lang)
	} else {
		fmt.Fprintf(&sb, "Based on the following webpage content, please answer this question %s.", lang)
		if req.StyleInstruction != "" {
			sb.WriteString(" " + req.StyleInstruction)
		}
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "Question: %s\n\nWebpage content:\n%s", req.Question, req.Content)
	return sb.String()
}

// FormatTurns renders earlier exchanges, oldest first.
func FormatTurns(turns []resumer.Turn) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		parts = append(parts, "User: "+t.Question+"\nAssistant: "+t.Answer)
	}
	return strings.Join(parts, "\n\n")
}
