package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/batch"
	"github.com/fwojciec/resumer/goquery"
)

// pageOutput is the JSON form of one extracted page.
type pageOutput struct {
	URL    string                 `json:"url"`
	Result *resumer.ExtractResult `json:"result,omitempty"`
	Hash   string                 `json:"hash,omitempty"`
	Tokens int                    `json:"tokens,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.File != "" {
		return c.runFile(deps)
	}
	if len(c.URLs) == 0 {
		return fail(deps, resumer.Errorf(resumer.EINVALID, "at least one URL or --file is required"))
	}

	var progress batch.ProgressFunc
	if len(c.URLs) > 1 {
		progress = func(event batch.ProgressEvent) {
			switch event.Type {
			case batch.ProgressStarted:
				fmt.Fprintf(deps.Stderr, "  Extracting %d pages\n", event.Total)
			case batch.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %s\n", event.Completed, event.Total,
					batch.TruncateURL(event.URL, 60), resumer.ErrorMessage(event.Error))
			case batch.ProgressCompleted:
				fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n", event.Completed, event.Total, batch.TruncateURL(event.URL, 60))
			}
		}
	}

	results, err := deps.Runner.Run(deps.Ctx, c.URLs, progress)
	if err != nil {
		return fail(deps, err)
	}

	outputs := make([]pageOutput, len(results))
	var failed int
	for i, r := range results {
		outputs[i] = pageOutput{URL: r.URL, Result: r.Extract, Hash: r.Hash, Tokens: r.Tokens}
		if r.Err != nil {
			failed++
			outputs[i].Error = resumer.ErrorMessage(r.Err)
		}
	}

	if c.JSON {
		if err := writeJSON(deps, outputs); err != nil {
			return err
		}
	} else {
		for _, out := range outputs {
			c.print(deps, out)
		}
	}

	if failed == len(results) {
		return resumer.Errorf(resumer.ENOTFOUND, "no content could be extracted")
	}
	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "  %d of %d pages failed\n", failed, len(results))
	}
	return nil
}

// runFile extracts a local HTML file.
func (c *ExtractCmd) runFile(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fail(deps, err)
	}
	defer f.Close()

	abs, err := filepath.Abs(c.File)
	if err != nil {
		return fail(deps, err)
	}

	doc, err := goquery.NewDocumentFromReader(f, "file://"+filepath.ToSlash(abs))
	if err != nil {
		return fail(deps, err)
	}

	result := deps.Extractor.Extract(doc)
	out := pageOutput{URL: result.PageInfo.URL, Result: result, Hash: batch.ComputeHash(result.Content)}
	if c.Tokens && deps.TokenCounter != nil {
		if out.Tokens, err = deps.TokenCounter.CountTokens(deps.Ctx, result.Content); err != nil {
			return fail(deps, err)
		}
	}

	if c.JSON {
		return writeJSON(deps, []pageOutput{out})
	}
	c.print(deps, out)
	return nil
}

// print writes one page as plain text, with diagnostics on stderr.
func (c *ExtractCmd) print(deps *Dependencies, out pageOutput) {
	if out.Result == nil {
		return
	}

	r := out.Result
	if r.PageInfo.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n", r.PageInfo.Title)
	}
	fmt.Fprintf(deps.Stdout, "%s\n\n%s\n\n", out.URL, r.Content)

	diag := fmt.Sprintf("stage=%s", r.Stage)
	if r.Selector != "" {
		diag += fmt.Sprintf(" selector=%q", r.Selector)
	}
	diag += " " + batch.FormatChars(r.Content)
	if c.Tokens {
		diag += " " + batch.FormatTokens(out.Tokens)
	}
	fmt.Fprintf(deps.Stderr, "  %s: %s\n", batch.TruncateURL(out.URL, 60), diag)
	if resumer.IsInsufficient(r.Content) {
		fmt.Fprintf(deps.Stderr, "  warning: %s has too little content to summarize\n", batch.TruncateURL(out.URL, 60))
	}
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
