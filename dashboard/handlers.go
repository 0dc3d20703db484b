package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/pipeline"
)

// textInput is accepted by endpoints that work on either raw text or a URL.
// Text wins when both are given.
type textInput struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type extractRequest struct {
	URL string `json:"url"`
}

type summarizeRequest struct {
	textInput
	Length skim.Length `json:"length"`
}

type batchRequest struct {
	textInput
	Lengths []skim.Length `json:"lengths"`
}

type keywordsRequest struct {
	textInput
	Limit int `json:"limit"`
}

type digestRequest struct {
	URL     string        `json:"url"`
	Lengths []skim.Length `json:"lengths"`
	Analyze *bool         `json:"analyze"`
}

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"modelLoaded"`
	Uptime      string `json:"uptime"`
}

type keywordsResponse struct {
	Keywords []string `json:"keywords"`
}

type sentimentResponse struct {
	Sentiment skim.Sentiment `json:"sentiment"`
}

// decode reads a JSON body into v. Unknown fields are rejected.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return skim.Errorf(skim.EINVALID, "request body required")
		}
		return skim.Errorf(skim.EINVALID, "invalid request body: %v", err)
	}
	return nil
}

// resolveText returns in.Text, or the extracted article text for in.URL.
func (s *Server) resolveText(ctx context.Context, in textInput) (string, error) {
	if strings.TrimSpace(in.Text) != "" {
		return in.Text, nil
	}
	if strings.TrimSpace(in.URL) == "" {
		return "", skim.Errorf(skim.EINVALID, "text or url required")
	}
	a, err := s.extractor.ExtractArticle(ctx, in.URL)
	if err != nil {
		return "", err
	}
	return a.Text, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, "", healthResponse{
		Status:      "ok",
		ModelLoaded: s.summarizer.ModelInfo().Loaded,
		Uptime:      time.Since(s.start).Round(time.Second).String(),
	})
}

func (s *Server) handleModel(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, "", s.summarizer.ModelInfo())
}

func (s *Server) handleDemo(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, "", skim.DemoArticles())
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	a, err := s.extractor.ExtractArticle(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSuccess(w, "article extracted", a)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Length == "" {
		req.Length = skim.LengthMedium
	}
	text, err := s.resolveText(r.Context(), req.textInput)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.summarizer.Summarize(r.Context(), skim.SummaryRequest{Text: text, Length: req.Length})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSuccess(w, "summary generated", res)
}

func (s *Server) handleSummarizeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	text, err := s.resolveText(r.Context(), req.textInput)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	results, err := s.summarizer.SummarizeBatch(r.Context(), text, req.Lengths)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSuccess(w, "summaries generated", results)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req keywordsRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	text, err := s.resolveText(r.Context(), req.textInput)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	keywords := s.analyzer.Keywords(text, req.Limit)
	if keywords == nil {
		keywords = []string{}
	}
	writeSuccess(w, "", keywordsResponse{Keywords: keywords})
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	var req textInput
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	text, err := s.resolveText(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSuccess(w, "", sentimentResponse{Sentiment: s.analyzer.Sentiment(text)})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	a, err := s.extractor.ExtractArticle(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSuccess(w, "", s.analyzer.Stats(a))
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	var req digestRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	analyze := req.Analyze == nil || *req.Analyze
	report, err := s.pipeline.Run(r.Context(), pipeline.Request{
		URL:     req.URL,
		Lengths: req.Lengths,
		Analyze: analyze,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSuccess(w, "digest complete", report)
}
