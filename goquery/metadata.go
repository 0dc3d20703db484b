package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/fwojciec/skim"
)

// Metadata holds page-level article metadata found outside the body text.
type Metadata struct {
	Title       string
	Authors     []string
	PublishDate *time.Time
}

var authorSelectors = []string{
	".byline",
	".author",
	".writer",
	".journalist",
	`[rel="author"]`,
	".post-author",
	".article-author",
}

var dateSelectors = []struct {
	Selector string
	Attr     string
}{
	{`meta[property="article:published_time"]`, "content"},
	{`meta[name="publishdate"]`, "content"},
	{`meta[name="pubdate"]`, "content"},
	{`meta[name="date"]`, "content"},
	{`meta[itemprop="datePublished"]`, "content"},
	{`time[datetime]`, "datetime"},
}

// ExtractMetadata parses HTML and returns title, authors and publish date
// using meta tags, bylines, time elements and JSON-LD.
func ExtractMetadata(html string) (*Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "failed to parse HTML: %v", err)
	}
	return metadataFromDocument(doc), nil
}

func metadataFromDocument(doc *goquery.Document) *Metadata {
	m := &Metadata{
		Title:       titleFromDocument(doc),
		Authors:     authorsFromDocument(doc),
		PublishDate: dateFromDocument(doc),
	}
	if ld := structuredArticle(doc); ld != nil {
		if len(m.Authors) == 0 {
			m.Authors = ld.Authors
		}
		if m.PublishDate == nil {
			m.PublishDate = ld.PublishDate
		}
	}
	return m
}

// titleFromDocument prefers the <title> tag without its site-name suffix,
// then social meta titles, then the first h1.
func titleFromDocument(doc *goquery.Document) string {
	if title := cleanTitle(doc.Find("title").First().Text()); len(title) > 10 {
		return title
	}
	for _, sel := range []string{
		`meta[property="og:title"]`,
		`meta[name="twitter:title"]`,
		`meta[name="title"]`,
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if content = skim.CollapseWhitespace(content); content != "" {
				return content
			}
		}
	}
	if h1 := skim.CollapseWhitespace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return cleanTitle(doc.Find("title").First().Text())
}

// cleanTitle strips a trailing " | Site Name" or " - Site Name".
func cleanTitle(title string) string {
	title = skim.CollapseWhitespace(title)
	for _, sep := range []string{" | ", " - ", " — ", " – "} {
		if i := strings.LastIndex(title, sep); i > 0 {
			return strings.TrimSpace(title[:i])
		}
	}
	return title
}

func authorsFromDocument(doc *goquery.Document) []string {
	var authors []string
	for _, sel := range authorSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			authors = append(authors, s.Text())
		})
	}
	for _, sel := range []string{`meta[name="author"]`, `meta[property="article:author"]`} {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if content, ok := s.Attr("content"); ok && !strings.HasPrefix(content, "http") {
				authors = append(authors, content)
			}
		})
	}
	return NormalizeAuthors(authors)
}

func dateFromDocument(doc *goquery.Document) *time.Time {
	for _, ds := range dateSelectors {
		var found *time.Time
		doc.Find(ds.Selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if v, ok := s.Attr(ds.Attr); ok {
				found = ParseDate(v)
			}
			return found == nil
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// ParseDate parses a date in any common format. Returns nil when the value
// cannot be parsed.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil || t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}

var genericAuthors = map[string]bool{
	"admin":  true,
	"editor": true,
	"staff":  true,
}

// NormalizeAuthors trims bylines, strips a leading "By", drops generic and
// overlong names, removes duplicates and keeps at most skim.MaxAuthors.
func NormalizeAuthors(in []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range in {
		a = skim.CollapseWhitespace(a)
		if len(a) > 3 && strings.EqualFold(a[:3], "by ") {
			a = strings.TrimSpace(a[3:])
		}
		key := strings.ToLower(a)
		if a == "" || len(a) >= 100 || genericAuthors[key] || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
		if len(out) == skim.MaxAuthors {
			break
		}
	}
	return out
}
