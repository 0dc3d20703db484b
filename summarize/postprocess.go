package summarize

import (
	"strings"

	"github.com/fwojciec/skim"
)

// shortMaxSentences caps short summaries.
const shortMaxSentences = 2

// PostProcess tidies generated text: it drops a trailing incomplete
// sentence when a sentence end exists in the last 30% of the text, keeps
// at most two sentences for short summaries and never returns more words
// than maxWords.
func PostProcess(summary string, length skim.Length, maxWords int) string {
	summary = skim.CollapseWhitespace(summary)
	if summary == "" {
		return ""
	}

	if !endsSentence(summary) {
		if end := strings.LastIndexAny(summary, ".!?"); end >= 0 && float64(end) > float64(len(summary))*0.7 {
			summary = summary[:end+1]
		}
	}

	if length == skim.LengthShort {
		if s := sentences(summary); len(s) > shortMaxSentences {
			summary = strings.Join(s[:shortMaxSentences], " ")
		}
	}

	if maxWords > 0 {
		if words := strings.Fields(summary); len(words) > maxWords {
			summary = strings.Join(words[:maxWords], " ")
		}
	}
	return strings.TrimSpace(summary)
}

func endsSentence(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// sentences splits s after each run of sentence-ending punctuation,
// keeping the punctuation. A trailing fragment is returned as the last
// element.
func sentences(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(".!?", rune(s[i])) {
			continue
		}
		j := i
		for j+1 < len(s) && strings.ContainsRune(".!?", rune(s[j+1])) {
			j++
		}
		if sent := strings.TrimSpace(s[start : j+1]); sent != "" {
			out = append(out, sent)
		}
		start = j + 1
		i = j
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" {
		out = append(out, rest)
	}
	return out
}
