// Package htmltomarkdown renders the content picked by a reference engine
// as markdown, laid out for reading in a terminal.
package htmltomarkdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/resumer"
)

var _ resumer.Converter = (*Converter)(nil)

// Converter turns an HTML fragment into CommonMark with tables. Trailing
// spaces are stripped from every line and blank-line runs collapse to one.
type Converter struct {
	md *converter.Converter
}

// NewConverter returns a ready Converter.
func NewConverter() *Converter {
	return &Converter{md: converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)}
}

// Convert renders fragment. A blank fragment is rejected.
func (c *Converter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", resumer.Errorf(resumer.EINVALID, "empty HTML input")
	}

	md, err := c.md.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("convert html to markdown: %w", err)
	}
	return tidy(md), nil
}

func tidy(md string) string {
	lines := strings.Split(md, "\n")
	out := lines[:0]
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
