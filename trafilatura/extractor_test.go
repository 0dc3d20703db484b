package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*trafilatura.Extractor)(nil)

const newsPage = `<!DOCTYPE html>
<html>
<head>
<title>City council approves new transit budget | Example News</title>
<meta property="og:title" content="City council approves new transit budget">
<meta name="author" content="Jane Doe">
<meta property="article:published_time" content="2025-03-14T09:30:00Z">
</head>
<body>
<nav class="main-nav"><a href="/">Home</a><a href="/politics">Politics</a></nav>
<article>
<h1>City council approves new transit budget</h1>
<p>The city council voted on Tuesday to approve a transit budget that expands bus service to the northern suburbs and funds two new light rail stations.</p>
<p>Supporters said the plan would cut commute times for thousands of residents, while critics questioned whether ridership projections were realistic.</p>
<p>The budget takes effect in July and will be reviewed again after the first year of operation.</p>
</article>
<footer><p>Copyright 2025 Example News Corp</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("reports its strategy name", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "trafilatura", trafilatura.NewExtractor().Name())
	})

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage, "https://news.example.com/transit")

		require.NoError(t, err)
		assert.Contains(t, result.Title, "City council approves new transit budget")
	})

	t.Run("extracts main content as text and html", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage, "https://news.example.com/transit")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "expands bus service")
		assert.Contains(t, result.ContentHTML, "light rail stations")
	})

	t.Run("removes navigation and footer boilerplate", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage, "https://news.example.com/transit")

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "Copyright 2025 Example News Corp")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("extracts author and publish date metadata", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage, "https://news.example.com/transit")

		require.NoError(t, err)
		assert.Contains(t, result.Authors, "Jane Doe")
		require.NotNil(t, result.PublishDate)
		assert.Equal(t, 2025, result.PublishDate.Year())
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("", "")

		require.Error(t, err)
	})

	t.Run("tolerates a missing page url", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage, "")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "expands bus service")
	})
}
