// Package summarize implements skim.Summarizer on top of a lazily loaded
// text-generation model.
package summarize

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/skim"
	"golang.org/x/sync/errgroup"
)

// DefaultGenerateTimeout bounds one inference call.
const DefaultGenerateTimeout = 60 * time.Second

var _ skim.Summarizer = (*Engine)(nil)

// Engine produces length-variant summaries. It holds no per-request state
// and caches nothing across calls.
type Engine struct {
	Model         *Model
	TokenCounter  skim.TokenCounter
	MaxInputChars int

	// GenerateTimeout bounds each inference call, including any wait for
	// the model to load. Zero means DefaultGenerateTimeout.
	GenerateTimeout time.Duration

	// BatchSize is the number of lengths SummarizeBatch generates
	// concurrently. Values below 1 mean sequential.
	BatchSize int

	// Deterministic forces greedy decoding for every length.
	Deterministic bool
}

// Summarize generates one summary of req.Text at req.Length.
func (e *Engine) Summarize(ctx context.Context, req skim.SummaryRequest) (*skim.SummaryResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	result := &skim.SummaryResult{
		Length:        req.Length,
		OriginalWords: skim.CountWords(req.Text),
		Model:         e.Model.Name,
	}

	clean := preprocess(req.Text)
	if clean == "" {
		return nil, skim.Errorf(skim.EINVALID, "summary text is empty after cleaning")
	}
	input, truncated := Truncate(clean, e.maxInputChars())
	result.Truncated = truncated

	genCtx, cancel := context.WithTimeout(ctx, e.generateTimeout())
	defer cancel()

	gen, err := e.Model.Get(genCtx)
	if err != nil {
		return e.fail(result, start, err)
	}

	out, err := gen.Generate(genCtx, Params(input, req.Length, e.Deterministic))
	if err != nil {
		if errors.Is(genCtx.Err(), context.DeadlineExceeded) {
			return e.fail(result, start, skim.WrapError(skim.EGENERATE, err, "generation timed out after %s", e.generateTimeout()))
		}
		if skim.ErrorCode(err) != skim.EGENERATE {
			err = skim.WrapError(skim.EGENERATE, err, "generation failed: %v", err)
		}
		return e.fail(result, start, err)
	}

	summary := PostProcess(out, req.Length, result.OriginalWords)
	if summary == "" {
		return e.fail(result, start, skim.Errorf(skim.EGENERATE, "model returned an empty summary"))
	}

	result.Summary = summary
	result.SummaryWords = skim.CountWords(summary)
	result.CompressionRatio = skim.CompressionRatio(result.OriginalWords, result.SummaryWords)
	result.Status = skim.SummaryOK
	if e.TokenCounter != nil {
		if n, err := e.TokenCounter.CountTokens(ctx, input); err == nil {
			result.InputTokens = n
		}
	}
	result.ProcessingTime = time.Since(start)
	return result, nil
}

// fail marks result as failed and discards any partial output.
func (e *Engine) fail(result *skim.SummaryResult, start time.Time, err error) (*skim.SummaryResult, error) {
	result.Status = skim.SummaryFailed
	result.Summary = ""
	result.SummaryWords = 0
	result.CompressionRatio = 0
	result.Err = skim.ErrorMessage(err)
	result.ProcessingTime = time.Since(start)
	return result, err
}

// SummarizeBatch generates one summary per distinct length. An empty
// lengths slice means all lengths. Per-length failures are reported in the
// corresponding result.
func (e *Engine) SummarizeBatch(ctx context.Context, text string, lengths []skim.Length) (map[skim.Length]*skim.SummaryResult, error) {
	if skim.CountWords(text) == 0 {
		return nil, skim.Errorf(skim.EINVALID, "summary text required")
	}
	if len(lengths) == 0 {
		lengths = skim.Lengths()
	}

	var distinct []skim.Length
	seen := make(map[skim.Length]bool)
	for _, l := range lengths {
		if !l.Valid() {
			return nil, skim.Errorf(skim.EINVALID, "unknown summary length %q", l)
		}
		if !seen[l] {
			seen[l] = true
			distinct = append(distinct, l)
		}
	}

	results := make([]*skim.SummaryResult, len(distinct))
	var g errgroup.Group
	g.SetLimit(max(1, e.BatchSize))
	for i, l := range distinct {
		g.Go(func() error {
			res, err := e.Summarize(ctx, skim.SummaryRequest{Text: text, Length: l})
			if res == nil {
				res = &skim.SummaryResult{Length: l, Status: skim.SummaryFailed, Err: skim.ErrorMessage(err)}
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[skim.Length]*skim.SummaryResult, len(distinct))
	for i, l := range distinct {
		out[l] = results[i]
	}
	return out, nil
}

// ModelInfo describes the configured model.
func (e *Engine) ModelInfo() skim.ModelInfo {
	return skim.ModelInfo{
		Provider:      e.Model.Provider,
		Model:         e.Model.Name,
		Device:        e.Model.Device,
		Loaded:        e.Model.Loaded(),
		MaxInputChars: e.maxInputChars(),
		Lengths:       skim.Lengths(),
	}
}

func (e *Engine) maxInputChars() int {
	if e.MaxInputChars > 0 {
		return e.MaxInputChars
	}
	return DefaultMaxInputChars
}

func (e *Engine) generateTimeout() time.Duration {
	if e.GenerateTimeout > 0 {
		return e.GenerateTimeout
	}
	return DefaultGenerateTimeout
}
