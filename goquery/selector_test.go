package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paragraph returns a sentence of n words.
func paragraph(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n)) + "."
}

func TestSelectorExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns article container text one block per line", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Storm Hits Coast Overnight | Herald</title></head><body>
<nav><p>Home News Sports</p></nav>
<article>
  <p>` + paragraph("wind", 60) + `</p>
  <div class="newsletter-signup"><p>Subscribe now</p></div>
  <p>` + paragraph("rain", 60) + `</p>
</article>
<footer><p>All rights reserved</p></footer>
</body></html>`

		ext, err := goquery.NewSelectorExtractor().Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Storm Hits Coast Overnight", ext.Title)
		lines := strings.Split(ext.Text, "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "wind"))
		assert.True(t, strings.HasPrefix(lines[1], "rain"))
		assert.NotContains(t, ext.Text, "Subscribe")
		assert.NotContains(t, ext.Text, "Home News")
		assert.Contains(t, ext.ContentHTML, "<article>")
	})

	t.Run("skips containers below the word threshold", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><p>Too short.</p></article>
<div class="entry-content"><p>` + paragraph("tide", 120) + `</p></div>
</body></html>`

		ext, err := goquery.NewSelectorExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, 120, skim.CountWords(ext.Text))
	})

	t.Run("falls back to all paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><p>First paragraph of the story.</p></div>
<div><p>Second paragraph of the story.</p></div>
<div class="sidebar"><p>Popular elsewhere</p></div>
</body></html>`

		ext, err := goquery.NewSelectorExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, "First paragraph of the story.\nSecond paragraph of the story.", ext.Text)
	})

	t.Run("removes scripts and styles", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><script>var x = 1;</script><style>p{}</style><p>Visible text here.</p></body></html>`

		ext, err := goquery.NewSelectorExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, "Visible text here.", ext.Text)
	})

	t.Run("reports its name", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "selectors", goquery.NewSelectorExtractor().Name())
	})
}
