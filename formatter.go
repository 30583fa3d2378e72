package resumer

import (
	"fmt"
	"strings"
)

// EntryHeader returns the one-line heading for the entry at a 0-based
// position in a history listing.
// Summaries use the page title, falling back to the URL; questions use the question.
func EntryHeader(index int, e *HistoryEntry) string {
	if e.Kind == KindQuestion {
		return fmt.Sprintf("Question #%d: %s", index+1, e.Question)
	}
	title := e.Title
	if title == "" {
		title = e.URL
	}
	if title == "" {
		title = "Unknown page"
	}
	return fmt.Sprintf("Summary #%d: %s", index+1, title)
}

// FormatHistory formats entries for terminal display.
// Entries are separated by blank lines.
func FormatHistory(entries []*HistoryEntry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for i, e := range entries {
		parts = append(parts, EntryHeader(i, e)+"\n"+
			"Date: "+e.CreatedAt.Local().Format("2006-01-02 15:04")+"\n"+
			e.Content)
	}

	return strings.Join(parts, "\n\n")
}

// TurnsFromHistory converts question entries, given newest first as
// returned by HistoryService.FindEntries, into conversation turns oldest first.
// Summary entries are skipped.
func TurnsFromHistory(entries []*HistoryEntry) []Turn {
	var turns []Turn
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Kind != KindQuestion {
			continue
		}
		turns = append(turns, Turn{Question: e.Question, Answer: e.Content})
	}
	return turns
}
