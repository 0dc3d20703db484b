package skim

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Report is the outcome of one dashboard request.
type Report struct {
	Article   *Article                  `json:"article"`
	Stats     ArticleStats              `json:"stats"`
	Summaries map[Length]*SummaryResult `json:"summaries"`
	Analysis  *Analysis                 `json:"analysis,omitempty"`
	Warnings  []string                  `json:"warnings,omitempty"`
	TotalTime time.Duration             `json:"-"`
}

type reportJSON Report

// MarshalJSON encodes TotalTime as totalSeconds.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		reportJSON
		TotalSeconds float64 `json:"totalSeconds"`
	}{reportJSON(r), Seconds(r.TotalTime)})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (r *Report) UnmarshalJSON(data []byte) error {
	var v struct {
		reportJSON
		TotalSeconds float64 `json:"totalSeconds"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Report(v.reportJSON)
	r.TotalTime = FromSeconds(v.TotalSeconds)
	return nil
}

// OrderedSummaries returns the summaries from shortest to longest length.
func (r *Report) OrderedSummaries() []*SummaryResult {
	var out []*SummaryResult
	for _, l := range Lengths() {
		if s, ok := r.Summaries[l]; ok {
			out = append(out, s)
		}
	}
	return out
}

// AverageCompression returns the mean compression ratio over successful summaries.
func (r *Report) AverageCompression() float64 {
	var sum float64
	var n int
	for _, s := range r.Summaries {
		if s.OK() {
			sum += s.CompressionRatio
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// TimeSaved returns the reading minutes saved by reading a summary instead
// of the article.
func (r *Report) TimeSaved() int {
	return max(0, r.Stats.ReadingTime-1)
}

// FormatReport formats a report as plain text for terminal display.
func FormatReport(r *Report) string {
	if r == nil || r.Article == nil {
		return ""
	}

	var sb strings.Builder
	a := r.Article

	title := a.Title
	if title == "" {
		title = a.URL
	}
	sb.WriteString("# " + title + "\n")
	sb.WriteString(a.URL + "\n")
	if len(a.Authors) > 0 {
		sb.WriteString("By " + strings.Join(a.Authors, ", ") + "\n")
	}
	if a.PublishDate != nil {
		sb.WriteString("Published " + a.PublishDate.Format("2006-01-02") + "\n")
	}
	fmt.Fprintf(&sb, "\n%d words, %d min read, quality %d/100 (%s)\n",
		r.Stats.WordCount, r.Stats.ReadingTime, a.QualityScore, a.Method)

	for _, w := range r.Warnings {
		sb.WriteString("warning: " + w + "\n")
	}

	for _, s := range r.OrderedSummaries() {
		fmt.Fprintf(&sb, "\n## %s summary\n", strings.ToUpper(string(s.Length[:1]))+string(s.Length[1:]))
		if !s.OK() {
			sb.WriteString("failed: " + s.Err + "\n")
			continue
		}
		sb.WriteString(s.Summary + "\n")
		fmt.Fprintf(&sb, "(%d words, %.1f%% compression, %.2fs)\n",
			s.SummaryWords, s.CompressionRatio, s.ProcessingTime.Seconds())
	}

	if r.Analysis != nil {
		sb.WriteString("\n## Analysis\n")
		if len(r.Analysis.Keywords) > 0 {
			sb.WriteString("Keywords: " + strings.Join(r.Analysis.Keywords, ", ") + "\n")
		}
		sb.WriteString("Sentiment: " + string(r.Analysis.Sentiment) + "\n")
	}

	fmt.Fprintf(&sb, "\nTotal %.2fs, average compression %.1f%%, %d min saved\n",
		r.TotalTime.Seconds(), r.AverageCompression(), r.TimeSaved())

	return sb.String()
}
