package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skim"
)

// Ensure BodyTextExtractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*BodyTextExtractor)(nil)

// BodyTextExtractor returns all visible text of the page body. It is the
// last resort of the extraction chain.
type BodyTextExtractor struct{}

// NewBodyTextExtractor creates a new BodyTextExtractor.
func NewBodyTextExtractor() *BodyTextExtractor {
	return &BodyTextExtractor{}
}

// Name returns the strategy name.
func (e *BodyTextExtractor) Name() string {
	return "bodytext"
}

// Extract returns the body text with one line per non-empty source line.
func (e *BodyTextExtractor) Extract(html string, _ string) (*skim.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := metadataFromDocument(doc)
	doc.Find("script, style, noscript, template, svg").Remove()

	var lines []string
	for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
		if line = skim.CollapseWhitespace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return &skim.Extraction{
		Title:       meta.Title,
		Text:        strings.Join(lines, "\n"),
		Authors:     meta.Authors,
		PublishDate: meta.PublishDate,
	}, nil
}
