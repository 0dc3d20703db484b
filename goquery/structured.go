package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skim"
)

// Ensure StructuredDataExtractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*StructuredDataExtractor)(nil)

// articleTypes are the schema.org types whose JSON-LD carries an article body.
var articleTypes = map[string]bool{
	"Article":              true,
	"NewsArticle":          true,
	"ReportageNewsArticle": true,
	"AnalysisNewsArticle":  true,
	"BlogPosting":          true,
	"OpinionNewsArticle":   true,
}

// StructuredDataExtractor reads the article from schema.org JSON-LD
// embedded in the page. Publishers that emit it usually include the full
// articleBody, which is cleaner than anything recovered from the DOM.
type StructuredDataExtractor struct{}

// NewStructuredDataExtractor creates a new StructuredDataExtractor.
func NewStructuredDataExtractor() *StructuredDataExtractor {
	return &StructuredDataExtractor{}
}

// Name returns the strategy name.
func (e *StructuredDataExtractor) Name() string {
	return "jsonld"
}

// Extract returns the first schema.org article found in the page.
// A page without one yields an empty Extraction.
func (e *StructuredDataExtractor) Extract(html string, _ string) (*skim.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "failed to parse HTML: %v", err)
	}
	if ld := structuredArticle(doc); ld != nil {
		return ld, nil
	}
	return &skim.Extraction{}, nil
}

// structuredArticle returns the first JSON-LD article in the document.
func structuredArticle(doc *goquery.Document) *skim.Extraction {
	var found *skim.Extraction
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var v any
		if err := json.Unmarshal([]byte(s.Text()), &v); err != nil {
			return true
		}
		found = findArticle(v)
		return found == nil
	})
	return found
}

// findArticle walks a decoded JSON-LD value, including @graph arrays.
func findArticle(v any) *skim.Extraction {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			if ext := findArticle(item); ext != nil {
				return ext
			}
		}
	case map[string]any:
		if isArticleType(node["@type"]) {
			return articleFromNode(node)
		}
		if graph, ok := node["@graph"]; ok {
			return findArticle(graph)
		}
	}
	return nil
}

func isArticleType(v any) bool {
	switch t := v.(type) {
	case string:
		return articleTypes[t]
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && articleTypes[s] {
				return true
			}
		}
	}
	return false
}

func articleFromNode(node map[string]any) *skim.Extraction {
	ext := &skim.Extraction{
		Title:   stringField(node, "headline"),
		Text:    bodyText(stringField(node, "articleBody")),
		Authors: NormalizeAuthors(authorNames(node["author"])),
	}
	if ext.Title == "" {
		ext.Title = stringField(node, "name")
	}
	ext.PublishDate = ParseDate(stringField(node, "datePublished"))
	return ext
}

func stringField(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return strings.TrimSpace(s)
}

// authorNames accepts a string, a Person object or an array of either.
func authorNames(v any) []string {
	switch a := v.(type) {
	case string:
		return []string{a}
	case map[string]any:
		if name := stringField(a, "name"); name != "" {
			return []string{name}
		}
	case []any:
		var names []string
		for _, item := range a {
			names = append(names, authorNames(item)...)
		}
		return names
	}
	return nil
}

// bodyText keeps paragraph breaks from articleBody and trims each line.
func bodyText(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = skim.CollapseWhitespace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
