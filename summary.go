package skim

import (
	"context"
	"encoding/json"
	"math"
	"time"
)

// SummaryStatus reports whether a summary was produced.
type SummaryStatus string

// Summary statuses.
const (
	SummaryOK     SummaryStatus = "ok"
	SummaryFailed SummaryStatus = "failed"
)

// SummaryRequest asks for one summary of Text at the given Length.
type SummaryRequest struct {
	Text   string `json:"text"`
	Length Length `json:"length"`
}

// Validate returns an error if the request contains invalid fields.
func (r *SummaryRequest) Validate() error {
	if CountWords(r.Text) == 0 {
		return Errorf(EINVALID, "summary text required")
	}
	if !r.Length.Valid() {
		return Errorf(EINVALID, "unknown summary length %q", r.Length)
	}
	return nil
}

// SummaryResult is the outcome of one summarization.
// A failed result carries no partial summary.
type SummaryResult struct {
	Length           Length        `json:"length"`
	Summary          string        `json:"summary"`
	OriginalWords    int           `json:"originalWords"`
	SummaryWords     int           `json:"summaryWords"`
	CompressionRatio float64       `json:"compressionRatio"`
	ProcessingTime   time.Duration `json:"-"`
	Status           SummaryStatus `json:"status"`
	Model            string        `json:"model,omitempty"`
	Truncated        bool          `json:"truncated,omitempty"`
	InputTokens      int           `json:"inputTokens,omitempty"`
	Err              string        `json:"error,omitempty"`
}

type summaryResultJSON SummaryResult

// MarshalJSON encodes ProcessingTime as processingSeconds.
func (r SummaryResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		summaryResultJSON
		ProcessingSeconds float64 `json:"processingSeconds"`
	}{summaryResultJSON(r), Seconds(r.ProcessingTime)})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (r *SummaryResult) UnmarshalJSON(data []byte) error {
	var v struct {
		summaryResultJSON
		ProcessingSeconds float64 `json:"processingSeconds"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = SummaryResult(v.summaryResultJSON)
	r.ProcessingTime = FromSeconds(v.ProcessingSeconds)
	return nil
}

// Seconds returns d in seconds rounded to milliseconds.
func Seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}

// FromSeconds is the inverse of Seconds.
func FromSeconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// OK reports whether the summary was produced.
func (r *SummaryResult) OK() bool {
	return r != nil && r.Status == SummaryOK
}

// CompressionRatio returns the percentage reduction from original to
// summary word count, rounded to one decimal and clamped to [0,100].
func CompressionRatio(originalWords, summaryWords int) float64 {
	if originalWords <= 0 {
		return 0
	}
	ratio := (1 - float64(summaryWords)/float64(originalWords)) * 100
	ratio = math.Round(ratio*10) / 10
	return math.Max(0, math.Min(100, ratio))
}

// Summarizer produces length-variant summaries.
type Summarizer interface {
	// Summarize generates one summary. Invalid requests return EINVALID.
	// Generation failures return EGENERATE together with a result whose
	// Status is SummaryFailed.
	Summarize(ctx context.Context, req SummaryRequest) (*SummaryResult, error)

	// SummarizeBatch generates one summary per distinct length. Lengths
	// are independent: a failure in one leaves the others intact and is
	// reported through that entry's Status. The error is non-nil only for
	// invalid input.
	SummarizeBatch(ctx context.Context, text string, lengths []Length) (map[Length]*SummaryResult, error)

	// ModelInfo describes the configured model.
	ModelInfo() ModelInfo
}

// GenerateRequest is a single inference call to a text-generation model.
type GenerateRequest struct {
	Text        string
	Length      Length
	MinTokens   int
	MaxTokens   int
	Temperature float32
	TopP        float32
	Seed        int32
}

// Generator invokes a pretrained text-generation model.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ModelInfo describes the model behind a Summarizer.
type ModelInfo struct {
	Provider      string   `json:"provider"`
	Model         string   `json:"model"`
	Device        string   `json:"device"`
	Loaded        bool     `json:"loaded"`
	MaxInputChars int      `json:"maxInputChars"`
	Lengths       []Length `json:"lengths"`
}
