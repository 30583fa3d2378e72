package main

import (
	"fmt"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/batch"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	lang, err := language(deps, c.Lang)
	if err != nil {
		return fail(deps, err)
	}

	page, err := loadPage(deps, c.URL)
	if err != nil {
		return fail(deps, err)
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, resumer.SummaryRequest{
		Content:  resumer.TruncateContent(page.Content, resumer.MaxContentLength),
		Language: lang,
		Options: resumer.SummaryOptions{
			Length: resumer.SummaryLength(c.Length),
			Format: resumer.SummaryFormat(c.Format),
			Style:  resumer.SummaryStyle(c.Style),
		},
	})
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintln(deps.Stdout, summary)

	entry := &resumer.HistoryEntry{
		Kind:        resumer.KindSummary,
		Title:       page.PageInfo.Title,
		URL:         page.PageInfo.URL,
		Content:     summary,
		ContentHash: batch.ComputeHash(page.Content),
	}
	if err := deps.History.CreateEntry(deps.Ctx, entry); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: summary not saved to history: %s\n", resumer.ErrorMessage(err))
	}

	return nil
}
