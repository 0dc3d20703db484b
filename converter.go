package skim

// Converter renders an article's main content HTML as Markdown.
type Converter interface {
	// Convert transforms content HTML into Markdown. Relative links are
	// resolved against pageURL when it is non-empty.
	Convert(html string, pageURL string) (string, error)
}
