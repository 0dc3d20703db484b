package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skim"
)

// Ensure SelectorExtractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*SelectorExtractor)(nil)

// unwantedElements are removed before any content selector runs.
const unwantedElements = "script, style, noscript, iframe, form, nav, header, footer, aside, menu"

// unwantedAttrRe matches class or id tokens of ads, navigation and overlays.
var unwantedAttrRe = regexp.MustCompile(`(?i)(^|[\s_-])(ad|ads|advert\w*|advertisement|sidebar|menu|nav|navbar|popup|modal|cookie\w*|subscribe\w*|newsletter|social|share\w*|related|promo\w*|comments?)($|[\s_-])`)

// contentSelectors are tried in order; the first match with enough words wins.
var contentSelectors = []string{
	"article",
	".article-body",
	".story-body",
	".post-content",
	".entry-content",
	".article-content",
	".story-content",
	".main-content",
	".content",
	`[role="main"]`,
	"main",
	".post-body",
	".article-text",
}

// blockSelector picks the text-bearing blocks inside a content container.
const blockSelector = "p, h2, h3, h4, li, blockquote"

// DefaultSelectorMinWords is the word count a content container must reach.
const DefaultSelectorMinWords = 100

// SelectorExtractor finds article text with common news-site CSS selectors,
// falling back to all paragraphs on the page.
type SelectorExtractor struct {
	// MinWords is the word count a matched container must exceed.
	MinWords int
}

// NewSelectorExtractor creates a new SelectorExtractor.
func NewSelectorExtractor() *SelectorExtractor {
	return &SelectorExtractor{MinWords: DefaultSelectorMinWords}
}

// Name returns the strategy name.
func (e *SelectorExtractor) Name() string {
	return "selectors"
}

// Extract strips boilerplate elements and returns the first content
// container with enough words, or the page's paragraphs joined.
func (e *SelectorExtractor) Extract(html string, _ string) (*skim.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := metadataFromDocument(doc)
	removeBoilerplate(doc)

	ext := &skim.Extraction{
		Title:       meta.Title,
		Authors:     meta.Authors,
		PublishDate: meta.PublishDate,
	}

	for _, sel := range contentSelectors {
		var matched bool
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := blockText(s)
			if skim.CountWords(text) > e.MinWords {
				ext.Text = text
				ext.ContentHTML, _ = goquery.OuterHtml(s)
				matched = true
			}
			return !matched
		})
		if matched {
			return ext, nil
		}
	}

	ext.Text = paragraphsText(doc.Selection)
	return ext, nil
}

// removeBoilerplate deletes navigation, ads and overlays from the document.
func removeBoilerplate(doc *goquery.Document) {
	doc.Find(unwantedElements).Remove()
	doc.Find("[class], [id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == "body" || goquery.NodeName(s) == "html" {
			return false
		}
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		return unwantedAttrRe.MatchString(class) || unwantedAttrRe.MatchString(id)
	}).Remove()
}

// blockText returns one line per text block inside s, or the flattened
// text of s when it has no block children.
func blockText(s *goquery.Selection) string {
	if s.Find(blockSelector).Length() == 0 {
		return skim.CollapseWhitespace(s.Text())
	}
	return joinBlocks(s.Find(blockSelector))
}

func paragraphsText(s *goquery.Selection) string {
	return joinBlocks(s.Find("p"))
}

func joinBlocks(blocks *goquery.Selection) string {
	var lines []string
	blocks.Each(func(_ int, b *goquery.Selection) {
		// Nested blocks (p inside li, li inside blockquote) are emitted by
		// their innermost element only.
		if b.Find(blockSelector).Length() > 0 {
			return
		}
		if line := skim.CollapseWhitespace(b.Text()); line != "" {
			lines = append(lines, line)
		}
	})
	return strings.Join(lines, "\n")
}
