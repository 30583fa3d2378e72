package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts an article fragment", func(t *testing.T) {
		t.Parallel()

		html := `<div>
<h1>City Council Approves Budget</h1>
<p>The council voted <strong>7 to 2</strong> on Tuesday.</p>
<blockquote><p>It is a fair budget.</p></blockquote>
<ul><li>Parks</li><li>Libraries</li></ul>
<p>Read the <a href="https://example.com/budget">full text</a>.</p>
</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# City Council Approves Budget")
		assert.Contains(t, md, "**7 to 2**")
		assert.Contains(t, md, "> It is a fair budget.")
		assert.Contains(t, md, "- Parks")
		assert.Contains(t, md, "[full text](https://example.com/budget)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Item</th><th>Amount</th></tr></thead>
<tbody><tr><td>Parks</td><td>1.2M</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Item")
		assert.Contains(t, md, "1.2M")
		assert.Contains(t, md, "|")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("\n\n<p>Hello</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Hello", md)
	})

	t.Run("collapses runs of blank lines", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<p>One</p>\n\n\n<div><p></p><p></p></div>\n\n<p>Two</p><pre>a  \n\n\nb</pre>")

		require.NoError(t, err)
		assert.Contains(t, md, "One")
		assert.Contains(t, md, "Two")
		assert.NotContains(t, md, "\n\n\n")
		for _, line := range strings.Split(md, "\n") {
			assert.Equal(t, strings.TrimRight(line, " \t"), line)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		assert.Equal(t, resumer.EINVALID, resumer.ErrorCode(err))
	})
}
