package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/fs"
	"github.com/fwojciec/resumer/pdf"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	filter := resumer.HistoryFilter{Limit: c.Limit}
	if c.Kind != "" {
		kind := resumer.EntryKind(c.Kind)
		if kind != resumer.KindSummary && kind != resumer.KindQuestion {
			return fail(deps, resumer.Errorf(resumer.EINVALID, "unknown kind %q (use summary or question)", c.Kind))
		}
		filter.Kind = &kind
	}

	entries, err := deps.History.FindEntries(deps.Ctx, filter)
	if err != nil {
		return fail(deps, err)
	}

	if c.JSON {
		if entries == nil {
			entries = []*resumer.HistoryEntry{}
		}
		return writeJSON(deps, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No history yet. Use 'resumer summarize' or 'resumer ask' to create some.")
		return nil
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, resumer.FormatHistory(entries))
		return nil
	}

	for _, e := range entries {
		label := e.Title
		if e.Kind == resumer.KindQuestion {
			label = e.Question
		}
		if label == "" {
			label = e.URL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-8s  %s\n     %s\n",
			shortID(e.ID), e.CreatedAt.Local().Format(pdf.DateLayout), e.Kind, label, e.URL)
	}

	return nil
}

// Run executes the history clear command.
func (c *HistoryClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return resumer.Errorf(resumer.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.History.DeleteEntries(deps.Ctx); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintln(deps.Stdout, "History cleared")
	return nil
}

// Run executes the history export command.
func (c *HistoryExportCmd) Run(deps *Dependencies) error {
	if (c.PDF == "") == (c.Dir == "") {
		return fail(deps, resumer.Errorf(resumer.EINVALID, "specify exactly one of --pdf or --dir"))
	}

	entries, err := deps.History.FindEntries(deps.Ctx, resumer.HistoryFilter{})
	if err != nil {
		return fail(deps, err)
	}

	if c.ID != "" {
		entry, err := findByID(entries, c.ID)
		if err != nil {
			return fail(deps, err)
		}
		entries = []*resumer.HistoryEntry{entry}
	}

	if len(entries) == 0 {
		return fail(deps, resumer.Errorf(resumer.ENOTFOUND, "no history to export"))
	}

	if c.Dir != "" {
		return c.exportDir(deps, entries)
	}
	return c.exportPDF(deps, entries)
}

func (c *HistoryExportCmd) exportDir(deps *Dependencies, entries []*resumer.HistoryEntry) error {
	export := fs.NewExport(c.Dir)
	if err := resumer.WriteEntries(deps.Ctx, export, entries); err != nil {
		_ = export.Abort()
		return fail(deps, err)
	}
	if err := export.Commit(); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d entries to %s\n", len(entries), export.Dir())
	return nil
}

func (c *HistoryExportCmd) exportPDF(deps *Dependencies, entries []*resumer.HistoryEntry) error {
	now := deps.now()

	path := c.PDF
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		name := pdf.HistoryFilename(now)
		if c.ID != "" {
			name = pdf.SummaryFilename(entries[0], now)
		}
		path = filepath.Join(path, name)
	}

	f, err := os.Create(path)
	if err != nil {
		return fail(deps, err)
	}

	if c.ID != "" {
		err = pdf.WriteSummary(f, entries[0], now)
	} else {
		err = pdf.WriteHistory(f, entries, now)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d entries to %s\n", len(entries), path)
	return nil
}

// findByID returns the entry whose ID starts with prefix. Ambiguous
// prefixes are rejected.
func findByID(entries []*resumer.HistoryEntry, prefix string) (*resumer.HistoryEntry, error) {
	var found *resumer.HistoryEntry
	for _, e := range entries {
		if !strings.HasPrefix(e.ID, prefix) {
			continue
		}
		if found != nil {
			return nil, resumer.Errorf(resumer.EINVALID, "ID prefix %q matches more than one entry", prefix)
		}
		found = e
	}
	if found == nil {
		return nil, resumer.Errorf(resumer.ENOTFOUND, "no history entry with ID %q", prefix)
	}
	return found, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
