package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/extract"
	"github.com/fwojciec/skim/gemini"
	"github.com/fwojciec/skim/goquery"
	"github.com/fwojciec/skim/heuristic"
	"github.com/fwojciec/skim/htmltomarkdown"
	skimhttp "github.com/fwojciec/skim/http"
	"github.com/fwojciec/skim/openai"
	"github.com/fwojciec/skim/readability"
	"github.com/fwojciec/skim/rod"
	skimslog "github.com/fwojciec/skim/slog"
	"github.com/fwojciec/skim/summarize"
	"github.com/fwojciec/skim/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the process environment before configuration
	// is read. A missing file is ignored. Empty disables loading.
	EnvFile string

	// Getenv reads configuration variables. Defaults to os.Getenv.
	Getenv func(string) string

	// Stdin is read when a command's input is "-".
	Stdin io.Reader

	// Services for end-to-end testing. When set they replace the wired
	// implementations.
	Extractor  skim.ArticleExtractor
	Summarizer skim.Summarizer
	Analyzer   skim.Analyzer

	fetcher skim.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
		Getenv:  os.Getenv,
		Stdin:   os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("skim"),
		kong.Description("Extract, summarize and analyze news articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'skim --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return skim.WrapError(skim.ECONFIG, err, "failed to load %s", m.EnvFile)
		}
	}

	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg, err := LoadConfig(cli.Config, getenv)
	if err != nil {
		return err
	}
	cli.apply(&cfg)
	cfg.ResolveAPIKey(getenv)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := NewLogger(stderr, cfg)
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Logger: logger,
	}
	defer m.Close()

	cmd := strings.Fields(kongCtx.Command())[0]
	if err := m.wire(ctx, cmd, deps); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// Commands that fetch articles or generate summaries.
var (
	fetchCommands   = map[string]bool{"extract": true, "summarize": true, "batch": true, "keywords": true, "sentiment": true, "stats": true, "digest": true, "serve": true}
	summaryCommands = map[string]bool{"summarize": true, "batch": true, "digest": true, "serve": true}
)

// wire fills deps with the configured implementations, each wrapped in
// its logging decorator. The fetcher and the tokenizer are only set up for
// commands that use them.
func (m *Main) wire(ctx context.Context, cmd string, deps *Dependencies) error {
	cfg := deps.Config
	logger := deps.Logger

	deps.Analyzer = m.Analyzer
	if deps.Analyzer == nil {
		deps.Analyzer = skimslog.NewLoggingAnalyzer(heuristic.NewAnalyzer(), logger)
	}

	deps.Summarizer = m.Summarizer
	if deps.Summarizer == nil {
		deps.Summarizer = skimslog.NewLoggingSummarizer(newEngine(ctx, cfg, summaryCommands[cmd], logger), logger)
	}

	deps.Extractor = m.Extractor
	if deps.Extractor == nil && fetchCommands[cmd] {
		fetcher, err := newFetcher(cfg)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --fetcher=browser")
			return err
		}
		m.fetcher = fetcher
		deps.Extractor = skimslog.NewLoggingArticleExtractor(newChain(cfg, skimslog.NewLoggingFetcher(fetcher, logger), logger), logger)
	}
	return nil
}

func newFetcher(cfg Config) (skim.Fetcher, error) {
	if cfg.Fetcher == FetcherBrowser {
		return rod.NewFetcher(rod.WithUserAgent(cfg.UserAgent), rod.WithTimeout(cfg.FetchTimeout))
	}
	return skimhttp.NewFetcher(skimhttp.WithUserAgent(cfg.UserAgent), skimhttp.WithTimeout(cfg.FetchTimeout)), nil
}

// newChain builds the extraction chain in strategy priority order.
func newChain(cfg Config, fetcher skim.Fetcher, logger *slog.Logger) *extract.Chain {
	strategies := []skim.Extractor{
		goquery.NewStructuredDataExtractor(),
		trafilatura.NewExtractor(),
		readability.NewExtractor(),
		goquery.NewSelectorExtractor(),
		goquery.NewBodyTextExtractor(),
	}
	for i, s := range strategies {
		strategies[i] = skimslog.NewLoggingExtractor(s, logger)
	}
	return &extract.Chain{
		Fetcher:    fetcher,
		Limiter:    extract.NewHostLimiter(cfg.RequestDelay),
		Strategies: strategies,
		Converter:  htmltomarkdown.NewConverter(),
		Scorer:     heuristic.NewQualityScorer(),
		MinWords:   cfg.MinWords,
	}
}

// newEngine builds the summarization engine. The model loads on first use.
func newEngine(ctx context.Context, cfg Config, countTokens bool, logger *slog.Logger) *summarize.Engine {
	var load summarize.LoadFunc
	switch cfg.Provider {
	case ProviderOpenAI:
		load = openai.Load(openai.Config{APIKey: cfg.APIKey, Model: cfg.ModelName(), BaseURL: cfg.BaseURL})
	default:
		load = gemini.Load(gemini.Config{APIKey: cfg.APIKey, Model: cfg.ModelName(), BaseURL: cfg.BaseURL})
	}
	logged := func(ctx context.Context) (skim.Generator, error) {
		g, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return skimslog.NewLoggingGenerator(g, logger), nil
	}

	e := &summarize.Engine{
		Model:           summarize.NewModel(cfg.Provider, cfg.ModelName(), cfg.Device, logged),
		MaxInputChars:   cfg.MaxInputChars,
		GenerateTimeout: cfg.GenerateTimeout,
		BatchSize:       cfg.BatchSize,
		Deterministic:   cfg.Deterministic,
	}
	if countTokens && cfg.Provider == ProviderGemini {
		tc, err := gemini.NewTokenCounter(cfg.ModelName())
		if err != nil {
			logger.WarnContext(ctx, "token counting disabled", "model", cfg.ModelName(), "err", err)
		} else {
			e.TokenCounter = tc
		}
	}
	return e
}
