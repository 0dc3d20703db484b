package skim

import "time"

// Extraction holds the content one extraction strategy found in a page.
type Extraction struct {
	// Title is the page or article title, if the strategy found one.
	Title string

	// Text is the article body as plain text with one paragraph per line.
	Text string

	// ContentHTML is the main content as clean HTML, when available.
	ContentHTML string

	// Authors lists bylines in document order.
	Authors []string

	// PublishDate is the publication time, if the strategy found one.
	PublishDate *time.Time
}

// Extractor is one strategy in the extraction chain. Strategies share a
// uniform contract so the chain can try them in a fixed priority order.
type Extractor interface {
	// Name identifies the strategy (e.g., "trafilatura", "jsonld").
	Name() string

	// Extract processes raw HTML and returns whatever content it finds.
	// An empty Text is not an error; the chain judges sufficiency.
	Extract(html string, pageURL string) (*Extraction, error)
}
