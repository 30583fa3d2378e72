package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/resumer/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads title and url", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<html><head><title>  Hello  </title></head><body></body></html>`, "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "Hello", doc.Title())
		assert.Equal(t, "https://example.com/a", doc.URL())
	})

	t.Run("missing title is empty", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<p>text</p>`, "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, doc.Title())
	})

	t.Run("parses from reader", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<title>T</title>`), "u")

		require.NoError(t, err)
		assert.Equal(t, "T", doc.Title())
	})

	t.Run("body is always present for parsed html", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<p>text</p>`, "u")

		require.NoError(t, err)
		body := doc.Body()
		require.NotNil(t, body)
		assert.Equal(t, "body", body.Tag())
	})
}

func TestDocument_QueryAll(t *testing.T) {
	t.Parallel()

	const page = `<body>
<div class="content" id="one">a</div>
<article><div class="content">b</div></article>
<div role="main">c</div>
</body>`

	t.Run("returns matches in document order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)
		nodes := doc.QueryAll(".content")

		require.Len(t, nodes, 2)
		assert.Equal(t, "one", nodes[0].ID())
		assert.Empty(t, nodes[1].ID())
	})

	t.Run("supports attribute selectors", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)
		nodes := doc.QueryAll(`[role="main"]`)

		require.Len(t, nodes, 1)
		assert.Equal(t, "main", nodes[0].Role())
	})

	t.Run("invalid selector matches nothing", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)
		assert.Empty(t, doc.QueryAll("div[[["))
	})
}

func TestNode(t *testing.T) {
	t.Parallel()

	const page = `<body><div id="d" class="Box wide">one<!-- note --><span>two</span></div><svg class="icon"></svg></body>`

	t.Run("children include elements and text only", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)
		div := doc.QueryAll("#d")[0]
		children := div.Children()

		require.Len(t, children, 2)
		assert.True(t, children[0].IsText())
		assert.Equal(t, "one", children[0].Text())
		assert.Empty(t, children[0].Tag())
		assert.Equal(t, "span", children[1].Tag())
		assert.Empty(t, children[1].Text())
	})

	t.Run("class name of html elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)
		class, ok := doc.QueryAll("#d")[0].ClassName()

		assert.True(t, ok)
		assert.Equal(t, "Box wide", class)
	})

	t.Run("svg elements have no string class", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)
		nodes := doc.QueryAll("svg")
		require.Len(t, nodes, 1)

		_, ok := nodes[0].ClassName()

		assert.False(t, ok)
	})

	t.Run("parent chain ends at the root element", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)
		span := doc.QueryAll("span")[0]

		assert.Equal(t, "div", span.Parent().Tag())
		assert.Equal(t, "body", span.Parent().Parent().Tag())
		assert.Equal(t, "html", span.Parent().Parent().Parent().Tag())
		assert.Nil(t, span.Parent().Parent().Parent().Parent())
	})

	t.Run("wrappers are stable", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)
		span := doc.QueryAll("span")[0]

		assert.Same(t, doc.QueryAll("#d")[0], span.Parent())
	})
}

func parse(t *testing.T, src string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocument(src, "https://example.com/page")
	require.NoError(t, err)
	return doc
}
