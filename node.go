package resumer

// Style holds the computed style properties that decide whether a node is
// perceivable. Values use CSS keyword spelling ("none", "hidden", "0").
type Style struct {
	Display    string
	Visibility string
	Opacity    string
}

// Rect is the rendered bounding box of a node in CSS pixels.
type Rect struct {
	Width  float64
	Height float64
}

// Node is a read-only view of an element or text node in a rendered
// document. Implementations must never mutate the underlying document.
type Node interface {
	// Tag returns the lower-case tag name, or "" for text nodes.
	Tag() string

	// IsText reports whether the node is a text node.
	IsText() bool

	// Text returns the character data of a text node. Elements return "".
	Text() string

	// ClassName returns the class attribute. ok is false when the element
	// exposes no plain string class (SVG and MathML elements).
	ClassName() (class string, ok bool)

	// ID returns the id attribute, or "".
	ID() string

	// Role returns the ARIA role attribute, or "".
	Role() string

	// Parent returns the parent element, or nil for the document root.
	Parent() Node

	// Children returns child elements and text nodes in document order.
	Children() []Node

	// Style returns the computed style. Text nodes report their parent's.
	Style() Style

	// Box returns the rendered bounding box. Text nodes report their parent's.
	Box() Rect
}

// Document provides read access to a rendered page.
type Document interface {
	// Title returns the document title.
	Title() string

	// URL returns the address the document was loaded from.
	URL() string

	// Body returns the body element, or nil if the document has none.
	Body() Node

	// QueryAll returns all elements matching the CSS selector in document
	// order. Invalid selectors match nothing.
	QueryAll(selector string) []Node
}

// Snapshot attributes carry the computed style and bounding box of each
// element when a rendering fetcher serializes a page, so a static parse of
// the snapshot sees what the browser saw.
const (
	AttrDisplay    = "data-resumer-display"
	AttrVisibility = "data-resumer-visibility"
	AttrOpacity    = "data-resumer-opacity"
	AttrWidth      = "data-resumer-width"
	AttrHeight     = "data-resumer-height"
)
