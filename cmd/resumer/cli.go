package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Loader       resumer.Loader
	Extractor    resumer.Extractor
	Runner       *batch.Runner
	Summarizer   resumer.Summarizer
	Asker        resumer.Asker
	TokenCounter resumer.TokenCounter
	History      resumer.HistoryService
	Settings     resumer.SettingsService

	// EnvAPIKey is the API key from the environment, if any. It takes
	// precedence over the stored key.
	EnvAPIKey string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract   ExtractCmd   `cmd:"" help:"Extract the readable text of web pages"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a web page"`
	Ask       AskCmd       `cmd:"" help:"Ask a question about a web page"`
	History   HistoryCmd   `cmd:"" help:"Manage saved summaries and answers"`
	Config    ConfigCmd    `cmd:"" help:"Show or change settings"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Page URLs to extract"`
	Render      bool     `short:"r" xor:"mode" help:"Render pages in a headless browser"`
	Probe       bool     `xor:"mode" help:"Load over HTTP and render only when JavaScript adds content"`
	JSON        bool     `help:"Print results as JSON"`
	File        string   `short:"f" type:"existingfile" help:"Extract from a local HTML file instead of a URL"`
	Tokens      bool     `short:"t" help:"Count tokens of the extracted text"`
	Engine      string   `enum:"cascade,trafilatura,readability" default:"cascade" help:"Extraction engine (cascade, trafilatura, readability)"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent page limit"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Length string `short:"l" enum:"short,medium,long" default:"medium" help:"Summary length (short, medium, long)"`
	Format string `short:"f" enum:"default,paragraphs,bullets" default:"default" help:"Summary layout (default, paragraphs, bullets)"`
	Style  string `short:"s" enum:"standard,formal,simple,conversational" default:"standard" help:"Writing style (standard, formal, simple, conversational)"`
	Lang   string `help:"Response language (en, id); defaults to the configured language"`
	Render bool   `short:"r" help:"Render the page in a headless browser"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL              string `arg:"" help:"Page URL"`
	Question         string `arg:"" help:"Question about the page"`
	StyleInstruction string `name:"style-instruction" help:"Guidance on how to answer"`
	FollowUp         bool   `name:"follow-up" help:"Include earlier questions about this page as context"`
	Lang             string `help:"Response language (en, id); defaults to the configured language"`
	Render           bool   `short:"r" help:"Render the page in a headless browser"`
}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" help:"List saved entries, newest first"`
	Clear  HistoryClearCmd  `cmd:"" help:"Delete all saved entries"`
	Export HistoryExportCmd `cmd:"" help:"Export saved entries to PDF or markdown"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Kind  string `help:"Only show entries of this kind (summary, question)"`
	Limit int    `short:"n" default:"20" help:"Maximum number of entries"`
	Full  bool   `help:"Print the full text of each entry"`
	JSON  bool   `help:"Print entries as JSON"`
}

// HistoryClearCmd is the "history clear" subcommand.
type HistoryClearCmd struct {
	Force bool `help:"Confirm deletion"`
}

// HistoryExportCmd is the "history export" subcommand.
type HistoryExportCmd struct {
	PDF string `help:"Write a PDF to this file or directory"`
	Dir string `help:"Write markdown files into this directory"`
	ID  string `help:"Export only the entry with this ID or ID prefix"`
}

// ConfigCmd groups the config subcommands.
type ConfigCmd struct {
	Show    ConfigShowCmd    `cmd:"" help:"Show current settings"`
	SetKey  ConfigSetKeyCmd  `cmd:"" name:"set-key" help:"Store the Gemini API key"`
	SetLang ConfigSetLangCmd `cmd:"" name:"set-lang" help:"Set the response language"`
}

// ConfigShowCmd is the "config show" subcommand.
type ConfigShowCmd struct{}

// ConfigSetKeyCmd is the "config set-key" subcommand.
type ConfigSetKeyCmd struct {
	Key string `arg:"" help:"Gemini API key"`
}

// ConfigSetLangCmd is the "config set-lang" subcommand.
type ConfigSetLangCmd struct {
	Lang string `arg:"" enum:"en,id" help:"Language code (en, id)"`
}
