package trafilatura

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/skim"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the strategy name.
func (e *Extractor) Name() string {
	return "trafilatura"
}

// Extract processes raw HTML and returns the main content and metadata.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*skim.Extraction, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	ext := &skim.Extraction{
		Title:       result.Metadata.Title,
		Text:        result.ContentText,
		ContentHTML: contentHTML,
		Authors:     splitAuthors(result.Metadata.Author),
	}
	if !result.Metadata.Date.IsZero() {
		date := result.Metadata.Date.In(time.UTC)
		ext.PublishDate = &date
	}
	return ext, nil
}

// splitAuthors splits trafilatura's semicolon-joined author field.
func splitAuthors(s string) []string {
	var authors []string
	for _, a := range strings.Split(s, ";") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
