// Package dashboard serves the skim web dashboard and its JSON API.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/pipeline"
	"github.com/gorilla/mux"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// maxBodyBytes caps API request bodies.
const maxBodyBytes = 1 << 20

const shutdownTimeout = 10 * time.Second

// Server exposes the dashboard page and the /api/v1 endpoints.
type Server struct {
	extractor  skim.ArticleExtractor
	summarizer skim.Summarizer
	analyzer   skim.Analyzer
	pipeline   *pipeline.Pipeline
	logger     *slog.Logger
	router     *mux.Router
	start      time.Time
}

// NewServer wires the handlers. A nil logger discards log output.
func NewServer(extractor skim.ArticleExtractor, summarizer skim.Summarizer, analyzer skim.Analyzer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		extractor:  extractor,
		summarizer: summarizer,
		analyzer:   analyzer,
		pipeline: &pipeline.Pipeline{
			Extractor:  extractor,
			Summarizer: summarizer,
			Analyzer:   analyzer,
		},
		logger: logger,
		start:  time.Now(),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(s.recoverer)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleDigestForm).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/model", s.handleModel).Methods(http.MethodGet)
	api.HandleFunc("/demo", s.handleDemo).Methods(http.MethodGet)
	api.HandleFunc("/extract", s.handleExtract).Methods(http.MethodPost)
	api.HandleFunc("/summarize", s.handleSummarize).Methods(http.MethodPost)
	api.HandleFunc("/summarize/batch", s.handleSummarizeBatch).Methods(http.MethodPost)
	api.HandleFunc("/keywords", s.handleKeywords).Methods(http.MethodPost)
	api.HandleFunc("/sentiment", s.handleSentiment).Methods(http.MethodPost)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodPost)
	api.HandleFunc("/digest", s.handleDigest).Methods(http.MethodPost)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, skim.Errorf(skim.ENOTFOUND, "no route for %s", r.URL.Path))
	})
	api.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Status: "error", Error: "method not allowed"})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return skim.WrapError(skim.EINTERNAL, err, "dashboard server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("dashboard shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return skim.WrapError(skim.EINTERNAL, err, "dashboard shutdown failed")
	}
	return nil
}
