package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/resumer"
)

var (
	// Matches the JavaScript \s class: ASCII whitespace, Unicode space
	// separators, line/paragraph separators and the byte order mark.
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
	blankLineRun  = regexp.MustCompile(`\n[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*\n+`)
	spaceRun      = regexp.MustCompile(`[ \t\r\f\v\p{Zs}]+`)
)

// Normalize collapses whitespace runs to a single space, collapses runs of
// blank lines to one, and trims the result. It is idempotent.
func Normalize(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = blankLineRun.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

type frame struct {
	node    resumer.Node
	closing bool
}

// VisibleText returns the rendered text of n, approximating innerText:
// text of non-rendered elements and invisible subtrees is dropped, block
// elements and <br> end lines, and whitespace inside a line is collapsed.
func VisibleText(n resumer.Node) string {
	if n == nil {
		return ""
	}

	var b strings.Builder
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.closing {
			b.WriteByte('\n')
			continue
		}
		node := f.node
		if node.IsText() {
			b.WriteString(whitespaceRun.ReplaceAllString(node.Text(), " "))
			continue
		}
		tag := node.Tag()
		if tag == "br" {
			b.WriteByte('\n')
			continue
		}
		if SkipTags[tag] || !IsVisible(node) {
			continue
		}
		if blockTags[tag] {
			stack = append(stack, frame{closing: true})
		}
		children := node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i]})
		}
	}

	return collapseLines(b.String())
}

// collapseLines collapses whitespace within each line, trims lines and
// drops empty ones.
func collapseLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
