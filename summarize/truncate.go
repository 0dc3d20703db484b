package summarize

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/skim"
)

// DefaultMaxInputChars is the input budget in characters.
const DefaultMaxInputChars = 2800

// Truncate keeps the head of text within maxChars characters. It cuts at
// the last sentence end when one lies in the final 20% of the window,
// otherwise at the last space. The result is a pure function of text and
// maxChars. Reports whether text was shortened.
func Truncate(text string, maxChars int) (string, bool) {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text, false
	}

	window := skim.TruncateRunes(text, maxChars)
	if end := strings.LastIndexAny(window, ".!?"); end >= 0 && float64(end) > float64(len(window))*0.8 {
		return strings.TrimSpace(window[:end+1]), true
	}
	if space := strings.LastIndex(window, " "); space > 0 {
		return strings.TrimSpace(window[:space]), true
	}
	return window, true
}

// preprocess strips links, addresses and site filler and collapses the
// text into a single line.
func preprocess(text string) string {
	return skim.CollapseWhitespace(skim.CleanText(text))
}
