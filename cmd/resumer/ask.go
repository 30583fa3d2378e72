package main

import (
	"fmt"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/batch"
)

// maxFollowUpTurns is the number of earlier exchanges sent with a follow-up.
const maxFollowUpTurns = 5

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if c.Question == "" {
		return fail(deps, resumer.Errorf(resumer.EINVALID, "question required"))
	}

	lang, err := language(deps, c.Lang)
	if err != nil {
		return fail(deps, err)
	}

	page, err := loadPage(deps, c.URL)
	if err != nil {
		return fail(deps, err)
	}

	req := resumer.AskRequest{
		Content:          resumer.TruncateContent(page.Content, resumer.MaxContentLength),
		Question:         c.Question,
		Language:         lang,
		StyleInstruction: c.StyleInstruction,
	}

	if c.FollowUp {
		turns, err := previousTurns(deps, page.PageInfo.URL)
		if err != nil {
			return fail(deps, err)
		}
		req.History = turns
	}

	answer, err := deps.Asker.Ask(deps.Ctx, req)
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintln(deps.Stdout, answer)

	entry := &resumer.HistoryEntry{
		Kind:        resumer.KindQuestion,
		Title:       page.PageInfo.Title,
		URL:         page.PageInfo.URL,
		Question:    c.Question,
		Content:     answer,
		ContentHash: batch.ComputeHash(page.Content),
	}
	if err := deps.History.CreateEntry(deps.Ctx, entry); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: answer not saved to history: %s\n", resumer.ErrorMessage(err))
	}

	return nil
}

// previousTurns returns the latest questions asked about url, oldest first.
func previousTurns(deps *Dependencies, url string) ([]resumer.Turn, error) {
	kind := resumer.KindQuestion
	entries, err := deps.History.FindEntries(deps.Ctx, resumer.HistoryFilter{
		Kind:  &kind,
		URL:   &url,
		Limit: maxFollowUpTurns,
	})
	if err != nil {
		return nil, err
	}

	return resumer.TurnsFromHistory(entries), nil
}
