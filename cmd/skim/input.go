package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/skim"
)

// readInput returns the text on stdin when input is "-", and the extracted
// article text otherwise.
func readInput(deps *Dependencies, input string) (string, error) {
	if input == "-" {
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", skim.WrapError(skim.EINVALID, err, "failed to read stdin")
		}
		text := strings.TrimSpace(string(b))
		if text == "" {
			return "", skim.Errorf(skim.EINVALID, "no text on stdin")
		}
		return text, nil
	}
	a, err := deps.Extractor.ExtractArticle(deps.Ctx, input)
	if err != nil {
		return "", err
	}
	return a.Text, nil
}

func parseLengths(values []string) ([]skim.Length, error) {
	var out []skim.Length
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			l, err := skim.ParseLength(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			out = append(out, l)
		}
	}
	return out, nil
}

// fail reports err on stderr the way every command does and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSummary(w io.Writer, r *skim.SummaryResult) {
	fmt.Fprintf(w, "[%s] %s\n", r.Length, r.Length.Description())
	if !r.OK() {
		fmt.Fprintf(w, "failed: %s\n", r.Err)
		return
	}
	fmt.Fprintln(w, r.Summary)
	fmt.Fprintf(w, "%d words from %d (%.1f%% shorter) in %s",
		r.SummaryWords, r.OriginalWords, r.CompressionRatio, r.ProcessingTime.Round(10*time.Millisecond))
	if r.Model != "" {
		fmt.Fprintf(w, ", %s", r.Model)
	}
	if r.Truncated {
		fmt.Fprint(w, ", input truncated")
	}
	fmt.Fprintln(w)
}
