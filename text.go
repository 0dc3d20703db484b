package skim

import (
	"regexp"
	"strings"
)

var (
	urlRe     = regexp.MustCompile(`https?://[^\s<>"]+`)
	emailRe   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	spaceRe   = regexp.MustCompile(`\s+`)
	newlineRe = regexp.MustCompile(`\r?\n`)
	sentEndRe = regexp.MustCompile(`[.!?]+`)

	// Filler phrases news sites splice into article bodies.
	boilerplatePhraseRe = regexp.MustCompile(`(?i)subscribe to[^.!?\n]{0,60}?newsletter|follow us on[^.!?\n]{0,40}?social media|share this article|related articles?:?|advertisement|click here|continue reading|also read:?|trending now`)
)

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CollapseWhitespace replaces every run of whitespace, including newlines,
// with a single space and trims the result.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// SplitParagraphs splits text on line breaks and returns the non-trivial
// lines (longer than 10 characters) in order.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range newlineRe.Split(text, -1) {
		line = strings.TrimSpace(line)
		if len(line) > 10 {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

// SplitSentences splits text on sentence-ending punctuation and returns
// the fragments longer than 5 characters. Punctuation is not retained.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range sentEndRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) > 5 {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// CleanText removes URLs, e-mail addresses and common boilerplate phrases
// from text and normalizes whitespace. Paragraph breaks are preserved as
// blank lines; paragraphs left empty after cleaning are dropped.
func CleanText(text string) string {
	var out []string
	for _, line := range newlineRe.Split(text, -1) {
		line = urlRe.ReplaceAllString(line, " ")
		line = emailRe.ReplaceAllString(line, " ")
		line = boilerplatePhraseRe.ReplaceAllString(line, " ")
		line = CollapseWhitespace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n\n")
}

// TruncateRunes returns s limited to n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
