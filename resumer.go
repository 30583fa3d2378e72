// Package resumer provides a CLI companion that extracts the readable text
// of a web page and uses it as context for LLM summaries and question
// answering.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, gemini/).
package resumer
