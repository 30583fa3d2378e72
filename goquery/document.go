package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/resumer"
	"golang.org/x/net/html"
)

// Ensure Document implements resumer.Document.
var _ resumer.Document = (*Document)(nil)

// Document is a parsed HTML page. Style and layout are read from snapshot
// annotations when present and approximated from CSS otherwise.
//
// A Document caches computed styles and is not safe for concurrent use.
type Document struct {
	doc   *goquery.Document
	url   string
	sheet *stylesheet

	nodes   map[*html.Node]*Node
	styles  map[*html.Node]*computed
	content map[*html.Node]bool
}

// NewDocument parses an HTML string loaded from pageURL.
func NewDocument(src, pageURL string) (*Document, error) {
	return NewDocumentFromReader(strings.NewReader(src), pageURL)
}

// NewDocumentFromReader parses HTML from r loaded from pageURL.
func NewDocumentFromReader(r io.Reader, pageURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, resumer.Errorf(resumer.EINVALID, "failed to parse HTML: %v", err)
	}

	var css []string
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		css = append(css, s.Text())
	})

	return &Document{
		doc:     doc,
		url:     pageURL,
		sheet:   parseStylesheet(css),
		nodes:   make(map[*html.Node]*Node),
		styles:  make(map[*html.Node]*computed),
		content: make(map[*html.Node]bool),
	}, nil
}

// Title returns the trimmed text of the first <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// URL returns the address the document was loaded from.
func (d *Document) URL() string {
	return d.url
}

// HTML renders the whole document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Body returns the <body> element, or nil.
func (d *Document) Body() resumer.Node {
	nodes := d.doc.Find("body").Nodes
	if len(nodes) == 0 {
		return nil
	}
	return d.node(nodes[0])
}

// QueryAll returns elements matching selector in document order. Invalid
// selectors match nothing.
func (d *Document) QueryAll(selector string) []resumer.Node {
	nodes := d.doc.Find(selector).Nodes
	out := make([]resumer.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.node(n))
	}
	return out
}

// node returns the wrapper for n, creating it on first use.
func (d *Document) node(n *html.Node) *Node {
	if w, ok := d.nodes[n]; ok {
		return w
	}
	w := &Node{doc: d, n: n}
	d.nodes[n] = w
	return w
}

// Ensure Node implements resumer.Node.
var _ resumer.Node = (*Node)(nil)

// Node is an element or text node of a Document.
type Node struct {
	doc *Document
	n   *html.Node
}

// Tag returns the lower-case tag name, or "" for text nodes.
func (n *Node) Tag() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.n.Data)
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.n.Type == html.TextNode
}

// Text returns the character data of a text node.
func (n *Node) Text() string {
	if n.n.Type != html.TextNode {
		return ""
	}
	return n.n.Data
}

// ClassName returns the class attribute. Foreign elements (SVG, MathML)
// have no string class and report ok false.
func (n *Node) ClassName() (string, bool) {
	if n.n.Type != html.ElementNode || n.n.Namespace != "" {
		return "", false
	}
	return attr(n.n, "class"), true
}

// ID returns the id attribute.
func (n *Node) ID() string {
	return attr(n.n, "id")
}

// Role returns the role attribute.
func (n *Node) Role() string {
	return attr(n.n, "role")
}

// Parent returns the parent element, or nil at the document root.
func (n *Node) Parent() resumer.Node {
	p := n.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return n.doc.node(p)
}

// Children returns child elements and text nodes in document order.
func (n *Node) Children() []resumer.Node {
	var out []resumer.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || c.Type == html.TextNode {
			out = append(out, n.doc.node(c))
		}
	}
	return out
}

// Style returns the computed style. Text nodes report their parent's.
func (n *Node) Style() resumer.Style {
	return n.doc.compute(n.element()).style
}

// Box returns the approximate bounding box. Text nodes report their
// parent's.
func (n *Node) Box() resumer.Rect {
	return n.doc.compute(n.element()).box
}

// element returns n itself for elements and the parent element for text.
func (n *Node) element() *html.Node {
	if n.n.Type == html.ElementNode {
		return n.n
	}
	if p := n.n.Parent; p != nil && p.Type == html.ElementNode {
		return p
	}
	return nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return true
		}
	}
	return false
}
