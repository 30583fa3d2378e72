package goquery

import (
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/fwojciec/resumer"
	"golang.org/x/net/html"
)

// Default box for rendered elements without explicit dimensions.
const (
	DefaultWidth  = 1280
	DefaultHeight = 16
)

// styleProperties are the only declarations the cascade tracks.
var styleProperties = map[string]bool{
	"display":    true,
	"visibility": true,
	"opacity":    true,
	"width":      true,
	"height":     true,
}

// unrenderedTags never generate boxes.
var unrenderedTags = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"template": true,
	"title":    true,
	"meta":     true,
	"link":     true,
	"noscript": true,
}

// replacedTags render content without text.
var replacedTags = map[string]bool{
	"img":      true,
	"video":    true,
	"audio":    true,
	"canvas":   true,
	"svg":      true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
	"input":    true,
	"textarea": true,
	"select":   true,
	"button":   true,
	"hr":       true,
}

var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"cite": true, "code": true, "data": true, "dfn": true, "em": true,
	"i": true, "kbd": true, "label": true, "mark": true, "q": true,
	"s": true, "samp": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true, "u": true, "var": true,
	"img": true, "input": true, "button": true, "select": true,
	"textarea": true,
}

type computed struct {
	style resumer.Style
	box   resumer.Rect

	// hidden is set when the element or an ancestor is display: none.
	hidden bool
}

var detached = &computed{
	style:  resumer.Style{Display: "none", Visibility: "hidden", Opacity: "1"},
	hidden: true,
}

// compute resolves the style and box of element n.
func (d *Document) compute(n *html.Node) *computed {
	if n == nil {
		return detached
	}
	if c, ok := d.styles[n]; ok {
		return c
	}

	var parent *computed
	if p := n.Parent; p != nil && p.Type == html.ElementNode {
		parent = d.compute(p)
	}

	var c *computed
	if display, ok := annotation(n, resumer.AttrDisplay); ok {
		c = fromSnapshot(n, display, parent)
	} else {
		c = d.fromCSS(n, parent)
	}
	d.styles[n] = c
	return c
}

func annotation(n *html.Node, name string) (string, bool) {
	if !hasAttr(n, name) {
		return "", false
	}
	return attr(n, name), true
}

// fromSnapshot reads the values a browser computed for n.
func fromSnapshot(n *html.Node, display string, parent *computed) *computed {
	c := &computed{
		style: resumer.Style{
			Display:    display,
			Visibility: attr(n, resumer.AttrVisibility),
			Opacity:    normalizeOpacity(attr(n, resumer.AttrOpacity)),
		},
		box: resumer.Rect{
			Width:  parseNumber(attr(n, resumer.AttrWidth)),
			Height: parseNumber(attr(n, resumer.AttrHeight)),
		},
	}
	c.hidden = display == "none" || (parent != nil && parent.hidden)
	return c
}

// fromCSS approximates the computed style of n from its stylesheet rules,
// inline style and user-agent defaults.
func (d *Document) fromCSS(n *html.Node, parent *computed) *computed {
	decls := d.sheet.declarations(n)
	tag := strings.ToLower(n.Data)

	display, declared := decls["display"]
	switch {
	case unrenderedTags[tag]:
		display = "none"
	case tag == "input" && strings.EqualFold(attr(n, "type"), "hidden"):
		display = "none"
	case !declared && hasAttr(n, "hidden"):
		display = "none"
	case !declared:
		display = defaultDisplay(tag)
	}

	visibility := decls["visibility"]
	if visibility == "" || visibility == "inherit" {
		visibility = "visible"
		if parent != nil {
			visibility = parent.style.Visibility
		}
	}

	opacity := decls["opacity"]
	if opacity == "" {
		opacity = "1"
	}

	c := &computed{
		style: resumer.Style{
			Display:    display,
			Visibility: visibility,
			Opacity:    normalizeOpacity(opacity),
		},
	}
	c.hidden = display == "none" || (parent != nil && parent.hidden)
	if c.hidden || !d.hasContent(n) {
		return c
	}

	c.box = resumer.Rect{Width: DefaultWidth, Height: DefaultHeight}
	if w, ok := length(decls["width"]); ok {
		c.box.Width = w
	}
	if h, ok := length(decls["height"]); ok {
		c.box.Height = h
	}
	return c
}

// hasContent reports whether n contains non-blank text or a replaced
// element.
func (d *Document) hasContent(n *html.Node) bool {
	if v, ok := d.content[n]; ok {
		return v
	}
	v := replacedTags[strings.ToLower(n.Data)]
	for c := n.FirstChild; c != nil && !v; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			v = strings.TrimSpace(c.Data) != ""
		case html.ElementNode:
			v = !unrenderedTags[strings.ToLower(c.Data)] && d.hasContent(c)
		}
	}
	d.content[n] = v
	return v
}

func defaultDisplay(tag string) string {
	switch {
	case tag == "li":
		return "list-item"
	case inlineTags[tag]:
		return "inline"
	default:
		return "block"
	}
}

// normalizeOpacity spells any zero opacity as "0".
func normalizeOpacity(v string) string {
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f <= 0 {
		return "0"
	}
	return v
}

func parseNumber(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// length converts a CSS length to pixels. Zero in any unit is zero; other
// values are understood only in px.
func length(v string) (float64, bool) {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return 0, false
	}
	num := strings.TrimRight(v, "abcdefghijklmnopqrstuvwxyz%")
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	if f == 0 {
		return 0, true
	}
	if unit := v[len(num):]; unit != "px" && unit != "" {
		return 0, false
	}
	return f, true
}

type rule struct {
	sel   cascadia.Sel
	decls []*css.Declaration
}

// stylesheet holds the style rules of a page in source order.
type stylesheet struct {
	rules []rule
}

// parseStylesheet compiles the qualified rules of each source. Sources or
// selectors that fail to parse are skipped, as are at-rules.
func parseStylesheet(sources []string) *stylesheet {
	s := &stylesheet{}
	for _, src := range sources {
		sheet, err := parser.Parse(src)
		if err != nil {
			continue
		}
		for _, r := range sheet.Rules {
			if r.Kind != css.QualifiedRule {
				continue
			}
			decls := relevant(r.Declarations)
			if len(decls) == 0 {
				continue
			}
			for _, text := range r.Selectors {
				sel, err := cascadia.Parse(text)
				if err != nil {
					continue
				}
				s.rules = append(s.rules, rule{sel: sel, decls: decls})
			}
		}
	}
	return s
}

func relevant(decls []*css.Declaration) []*css.Declaration {
	var out []*css.Declaration
	for _, decl := range decls {
		decl.Property = strings.ToLower(strings.TrimSpace(decl.Property))
		if styleProperties[decl.Property] {
			out = append(out, decl)
		}
	}
	return out
}

// precedence orders competing declarations: importance, then inline over
// rules, then specificity, then source order.
type precedence struct {
	important   bool
	inline      bool
	specificity cascadia.Specificity
	order       int
}

func (p precedence) less(o precedence) bool {
	if p.important != o.important {
		return o.important
	}
	if p.inline != o.inline {
		return o.inline
	}
	if p.specificity != o.specificity {
		return p.specificity.Less(o.specificity)
	}
	return p.order < o.order
}

// declarations returns the winning value of each tracked property for n.
func (s *stylesheet) declarations(n *html.Node) map[string]string {
	values := make(map[string]string)
	winners := make(map[string]precedence)
	apply := func(decl *css.Declaration, p precedence) {
		if cur, ok := winners[decl.Property]; ok && p.less(cur) {
			return
		}
		winners[decl.Property] = p
		values[decl.Property] = strings.ToLower(strings.TrimSpace(decl.Value))
	}

	for i, r := range s.rules {
		if !r.sel.Match(n) {
			continue
		}
		for _, decl := range r.decls {
			apply(decl, precedence{
				important:   decl.Important,
				specificity: r.sel.Specificity(),
				order:       i,
			})
		}
	}

	if inline := strings.TrimSpace(attr(n, "style")); inline != "" {
		if !strings.HasSuffix(inline, ";") {
			inline += ";"
		}
		decls, err := parser.ParseDeclarations(inline)
		if err == nil {
			for i, decl := range relevant(decls) {
				apply(decl, precedence{important: decl.Important, inline: true, order: i})
			}
		}
	}
	return values
}
