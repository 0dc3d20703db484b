package readability_test

import (
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ skim.Extractor = (*readability.Extractor)(nil)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("", "")

	require.Error(t, err)
	assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
}

func TestExtractor_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "readability", readability.NewExtractor().Name())
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content</p></article></body>
</html>`

	result, err := readability.NewExtractor().Extract(html, "https://example.com/page")

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
}

func TestExtractor_ExtractsText(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output of the extractor.</p></article>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html, "https://example.com/page")

	require.NoError(t, err)
	assert.Contains(t, result.Text, "main article content")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html, "")

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Footer copyright text")
}

func TestExtractor_ExtractsByline(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title><meta name="author" content="Jane Doe"></head>
<body>
<article><p>This is the main article content that should be preserved in the output of the extractor.</p></article>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, result.Authors)
}
