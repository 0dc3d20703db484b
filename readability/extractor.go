package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/skim"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the strategy name.
func (e *Extractor) Name() string {
	return "readability"
}

// Extract processes raw HTML and returns the main content and byline.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*skim.Extraction, error) {
	if rawHTML == "" {
		return nil, skim.Errorf(skim.EINVALID, "empty HTML input")
	}

	var u *url.URL
	if parsed, err := url.Parse(pageURL); err == nil && parsed.Host != "" {
		u = parsed
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}

	ext := &skim.Extraction{
		Title:       article.Title,
		Text:        article.TextContent,
		ContentHTML: article.Content,
		PublishDate: article.PublishedTime,
	}
	if byline := strings.TrimSpace(article.Byline); byline != "" {
		ext.Authors = []string{strings.TrimPrefix(byline, "By ")}
	}
	return ext, nil
}
