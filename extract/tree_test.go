package extract_test

import (
	"strings"

	"github.com/fwojciec/resumer"
)

// node is an in-memory resumer.Node used to build synthetic documents.
type node struct {
	tag      string
	text     string
	isText   bool
	attrs    map[string]string
	noClass  bool
	style    resumer.Style
	box      resumer.Rect
	parent   *node
	children []*node
}

var _ resumer.Node = (*node)(nil)

func (n *node) Tag() string  { return n.tag }
func (n *node) IsText() bool { return n.isText }
func (n *node) Text() string { return n.text }
func (n *node) ID() string   { return n.attrs["id"] }
func (n *node) Role() string { return n.attrs["role"] }

func (n *node) ClassName() (string, bool) {
	if n.noClass {
		return "", false
	}
	return n.attrs["class"], true
}

func (n *node) Parent() resumer.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Children() []resumer.Node {
	out := make([]resumer.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) Style() resumer.Style {
	if n.isText {
		return n.parent.Style()
	}
	return n.style
}

func (n *node) Box() resumer.Rect {
	if n.isText {
		return n.parent.Box()
	}
	return n.box
}

type option func(*node)

func attr(name, value string) option { return func(n *node) { n.attrs[name] = value } }
func class(v string) option          { return attr("class", v) }
func id(v string) option             { return attr("id", v) }
func role(v string) option           { return attr("role", v) }
func displayNone() option            { return func(n *node) { n.style.Display = "none" } }
func visibilityHidden() option       { return func(n *node) { n.style.Visibility = "hidden" } }
func transparent() option            { return func(n *node) { n.style.Opacity = "0" } }
func zeroBox() option                { return func(n *node) { n.box = resumer.Rect{} } }
func zeroHeight() option             { return func(n *node) { n.box.Height = 0 } }
func svgClass() option               { return func(n *node) { n.noClass = true } }

// el builds an element. Items are options, child nodes, or strings that
// become text children.
func el(tag string, items ...any) *node {
	n := &node{
		tag:   tag,
		attrs: map[string]string{},
		style: resumer.Style{Display: "block", Visibility: "visible", Opacity: "1"},
		box:   resumer.Rect{Width: 800, Height: 20},
	}
	for _, item := range items {
		switch v := item.(type) {
		case option:
			v(n)
		case *node:
			v.parent = n
			n.children = append(n.children, v)
		case string:
			n.children = append(n.children, &node{text: v, isText: true, parent: n})
		}
	}
	return n
}

// document is an in-memory resumer.Document supporting the simple
// selectors used by the extractor: tag, .class, #id and [attr="value"],
// optionally comma-separated.
type document struct {
	title string
	url   string
	root  *node
}

var _ resumer.Document = (*document)(nil)

func newDocument(body *node) *document {
	return &document{
		title: "Test Page",
		url:   "https://example.com/page",
		root:  el("html", body),
	}
}

func (d *document) Title() string { return d.title }
func (d *document) URL() string   { return d.url }

func (d *document) Body() resumer.Node {
	for _, c := range d.root.children {
		if c.tag == "body" {
			return c
		}
	}
	return nil
}

func (d *document) QueryAll(selector string) []resumer.Node {
	var parts []string
	for _, p := range strings.Split(selector, ",") {
		parts = append(parts, strings.TrimSpace(p))
	}

	var out []resumer.Node
	stack := []*node{d.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !n.isText {
			for _, p := range parts {
				if matches(n, p) {
					out = append(out, n)
					break
				}
			}
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return out
}

func matches(n *node, sel string) bool {
	switch {
	case strings.HasPrefix(sel, "."):
		for _, c := range strings.Fields(n.attrs["class"]) {
			if c == sel[1:] {
				return true
			}
		}
		return false
	case strings.HasPrefix(sel, "#"):
		return n.attrs["id"] == sel[1:]
	case strings.HasPrefix(sel, "["):
		name, value, _ := strings.Cut(strings.Trim(sel, "[]"), "=")
		return n.attrs[name] == strings.Trim(value, `"`)
	default:
		return n.tag == sel
	}
}

// text returns a string of n copies of r.
func text(r rune, n int) string {
	return strings.Repeat(string(r), n)
}
