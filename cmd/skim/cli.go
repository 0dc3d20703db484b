package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/skim"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Config     Config
	Logger     *slog.Logger
	Extractor  skim.ArticleExtractor
	Summarizer skim.Summarizer
	Analyzer   skim.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config        string `short:"c" type:"path" help:"YAML config file" env:"SKIM_CONFIG"`
	Provider      string `help:"Model provider (gemini, openai)"`
	Model         string `short:"m" help:"Model name"`
	Device        string `help:"Inference device hint (auto, cpu, cuda:N, gpu:N, mps)"`
	BaseURL       string `name:"base-url" help:"Override the provider endpoint"`
	Fetcher       string `help:"Page fetcher (http, browser)"`
	Deterministic bool   `help:"Use greedy decoding for every length"`
	LogLevel      string `name:"log-level" help:"Log level (debug, info, warn, error)"`

	Extract   ExtractCmd   `cmd:"" help:"Extract the article at a URL"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize an article or stdin at one length"`
	Batch     BatchCmd     `cmd:"" help:"Summarize an article or stdin at several lengths"`
	Keywords  KeywordsCmd  `cmd:"" help:"List the keywords of an article or stdin"`
	Sentiment SentimentCmd `cmd:"" help:"Classify the sentiment of an article or stdin"`
	Stats     StatsCmd     `cmd:"" help:"Show statistics for an article"`
	Digest    DigestCmd    `cmd:"" help:"Extract, summarize and analyze an article"`
	Demo      DemoCmd      `cmd:"" help:"List demo article URLs"`
	ModelInfo ModelCmd     `cmd:"" name:"model" help:"Show the configured summarization model"`
	Serve     ServeCmd     `cmd:"" help:"Run the web dashboard"`
}

// apply overlays flags that were set onto cfg.
func (c *CLI) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Provider, c.Provider)
	set(&cfg.Model, c.Model)
	set(&cfg.Device, c.Device)
	set(&cfg.BaseURL, c.BaseURL)
	set(&cfg.Fetcher, c.Fetcher)
	set(&cfg.LogLevel, c.LogLevel)
	if c.Deterministic {
		cfg.Deterministic = true
	}
	if c.Serve.Addr != "" {
		cfg.Addr = c.Serve.Addr
	}
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Article URL"`
	Markdown bool   `help:"Print the Markdown rendering instead of plain text"`
	JSON     bool   `name:"json" help:"Print the article as JSON"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	Input  string `arg:"" help:"Article URL, or - to read text from stdin"`
	Length string `short:"l" default:"medium" enum:"short,medium,detailed" help:"Summary length (short, medium, detailed)"`
	JSON   bool   `name:"json" help:"Print the result as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Input   string   `arg:"" help:"Article URL, or - to read text from stdin"`
	Lengths []string `short:"l" name:"length" help:"Summary lengths (repeatable, default all)"`
	JSON    bool     `name:"json" help:"Print the results as JSON"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	Input string `arg:"" help:"Article URL, or - to read text from stdin"`
	Limit int    `short:"n" default:"8" help:"Maximum number of keywords"`
}

// SentimentCmd is the "sentiment" subcommand.
type SentimentCmd struct {
	Input string `arg:"" help:"Article URL, or - to read text from stdin"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	URL  string `arg:"" help:"Article URL"`
	JSON bool   `name:"json" help:"Print the statistics as JSON"`
}

// DigestCmd is the "digest" subcommand.
type DigestCmd struct {
	URL       string   `arg:"" help:"Article URL"`
	Lengths   []string `short:"l" name:"length" help:"Summary lengths (repeatable, default all)"`
	NoAnalyze bool     `name:"no-analyze" help:"Skip keywords and sentiment"`
	JSON      bool     `name:"json" help:"Print the report as JSON"`
}

// DemoCmd is the "demo" subcommand.
type DemoCmd struct{}

// ModelCmd is the "model" subcommand.
type ModelCmd struct {
	JSON bool `name:"json" help:"Print the model info as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (default :8080)"`
}
