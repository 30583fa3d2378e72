package extract

import (
	"strings"

	"github.com/fwojciec/resumer"
)

// IsVisible reports whether n is rendered and perceivable: displayed, not
// hidden, not fully transparent and with a non-empty bounding box.
func IsVisible(n resumer.Node) bool {
	if n == nil {
		return false
	}
	style := n.Style()
	box := n.Box()
	return style.Display != "none" &&
		style.Visibility != "hidden" &&
		style.Opacity != "0" &&
		box.Width > 0 && box.Height > 0
}

// IsNoise reports whether n is page furniture rather than primary content:
// navigation, header or footer elements, navigation landmarks, or elements
// whose class or id contains one of NoiseTerms. Elements without a plain,
// non-empty class are never noise, whatever their tag, role or id.
func IsNoise(n resumer.Node) bool {
	if n == nil || n.IsText() {
		return false
	}

	class, ok := n.ClassName()
	if !ok || class == "" {
		return false
	}

	switch n.Tag() {
	case "nav", "header", "footer":
		return true
	}
	if n.Role() == "navigation" {
		return true
	}

	class = strings.ToLower(class)
	id := strings.ToLower(n.ID())
	for _, term := range NoiseTerms {
		if strings.Contains(class, term) || strings.Contains(id, term) {
			return true
		}
	}
	return false
}

// IsContentParagraph reports whether paragraph p is likely main content.
func IsContentParagraph(p resumer.Node) bool {
	return isContentParagraph(p, VisibleText(p))
}

func isContentParagraph(p resumer.Node, text string) bool {
	if length(text) < MinParagraphLength {
		return false
	}
	if !IsVisible(p) || IsNoise(p) {
		return false
	}
	if parent := p.Parent(); parent != nil && IsNoise(parent) {
		return false
	}
	return true
}
