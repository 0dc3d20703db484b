package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/dashboard"
	"github.com/fwojciec/skim/extract"
	"github.com/fwojciec/skim/gemini"
	skimhttp "github.com/fwojciec/skim/http"
	"github.com/fwojciec/skim/openai"
	"github.com/fwojciec/skim/summarize"
	"gopkg.in/yaml.v3"
)

// Providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Fetcher kinds.
const (
	FetcherHTTP    = "http"
	FetcherBrowser = "browser"
)

// Config is the runtime configuration. It is read once at startup.
type Config struct {
	Provider        string        `yaml:"provider"`
	Model           string        `yaml:"model"`
	Device          string        `yaml:"device"`
	APIKey          string        `yaml:"apiKey"`
	BaseURL         string        `yaml:"baseURL"`
	MaxInputChars   int           `yaml:"maxInputChars"`
	FetchTimeout    time.Duration `yaml:"fetchTimeout"`
	GenerateTimeout time.Duration `yaml:"generateTimeout"`
	BatchSize       int           `yaml:"batchSize"`
	UserAgent       string        `yaml:"userAgent"`
	RequestDelay    time.Duration `yaml:"requestDelay"`
	MinWords        int           `yaml:"minWords"`
	Fetcher         string        `yaml:"fetcher"`
	Deterministic   bool          `yaml:"deterministic"`
	Addr            string        `yaml:"addr"`
	LogLevel        string        `yaml:"logLevel"`
	LogFormat       string        `yaml:"logFormat"`
}

// DefaultConfig returns the built-in defaults. Model stays empty so the
// provider's default model applies.
func DefaultConfig() Config {
	return Config{
		Provider:        ProviderGemini,
		Device:          "auto",
		MaxInputChars:   summarize.DefaultMaxInputChars,
		FetchTimeout:    skimhttp.DefaultFetchTimeout,
		GenerateTimeout: summarize.DefaultGenerateTimeout,
		BatchSize:       1,
		UserAgent:       skimhttp.DefaultUserAgent,
		RequestDelay:    time.Second,
		MinWords:        extract.DefaultMinWords,
		Fetcher:         FetcherHTTP,
		Addr:            dashboard.DefaultAddr,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// LoadConfig applies, in order, the defaults, the YAML file at path (if
// any) and the environment. Provider-specific API keys are left to
// ResolveAPIKey.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, skim.WrapError(skim.ECONFIG, err, "failed to open config file %s", path)
		}
		defer f.Close()
		if err := cfg.decodeYAML(f); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decodeYAML overlays r onto c. Unknown keys are rejected.
func (c *Config) decodeYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return skim.WrapError(skim.ECONFIG, err, "invalid config file: %v", err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	strs := map[string]*string{
		"SKIM_PROVIDER":   &c.Provider,
		"SKIM_MODEL":      &c.Model,
		"SKIM_DEVICE":     &c.Device,
		"SKIM_BASE_URL":   &c.BaseURL,
		"SKIM_USER_AGENT": &c.UserAgent,
		"SKIM_FETCHER":    &c.Fetcher,
		"SKIM_ADDR":       &c.Addr,
		"SKIM_LOG_LEVEL":  &c.LogLevel,
		"SKIM_LOG_FORMAT": &c.LogFormat,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"SKIM_MAX_INPUT_CHARS": &c.MaxInputChars,
		"SKIM_BATCH_SIZE":      &c.BatchSize,
		"SKIM_MIN_WORDS":       &c.MinWords,
	}
	for key, dst := range ints {
		if v := getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return skim.Errorf(skim.ECONFIG, "%s: invalid integer %q", key, v)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"SKIM_FETCH_TIMEOUT":    &c.FetchTimeout,
		"SKIM_GENERATE_TIMEOUT": &c.GenerateTimeout,
		"SKIM_REQUEST_DELAY":    &c.RequestDelay,
	}
	for key, dst := range durations {
		if v := getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return skim.Errorf(skim.ECONFIG, "%s: invalid duration %q", key, v)
			}
			*dst = d
		}
	}

	if v := getenv("SKIM_DETERMINISTIC"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return skim.Errorf(skim.ECONFIG, "SKIM_DETERMINISTIC: invalid boolean %q", v)
		}
		c.Deterministic = b
	}

	if v := getenv("SKIM_API_KEY"); v != "" {
		c.APIKey = v
	}
	return nil
}

// ResolveAPIKey fills an unset APIKey from the provider's own variable
// (GEMINI_API_KEY or OPENAI_API_KEY). It must run after every source that
// can change the provider, flags included.
func (c *Config) ResolveAPIKey(getenv func(string) string) {
	if c.APIKey != "" {
		return
	}
	switch c.Provider {
	case ProviderGemini:
		c.APIKey = getenv("GEMINI_API_KEY")
	case ProviderOpenAI:
		c.APIKey = getenv("OPENAI_API_KEY")
	}
}

var deviceRe = regexp.MustCompile(`^(auto|cpu|mps|(cuda|gpu):\d+)$`)

// Validate reports the first invalid setting as ECONFIG.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return skim.Errorf(skim.ECONFIG, "provider: unknown provider %q", c.Provider)
	}
	if !deviceRe.MatchString(c.Device) {
		return skim.Errorf(skim.ECONFIG, "device: invalid device %q", c.Device)
	}
	switch c.Fetcher {
	case FetcherHTTP, FetcherBrowser:
	default:
		return skim.Errorf(skim.ECONFIG, "fetcher: unknown fetcher %q", c.Fetcher)
	}
	if c.MaxInputChars <= 0 {
		return skim.Errorf(skim.ECONFIG, "maxInputChars: must be positive")
	}
	if c.FetchTimeout <= 0 {
		return skim.Errorf(skim.ECONFIG, "fetchTimeout: must be positive")
	}
	if c.GenerateTimeout <= 0 {
		return skim.Errorf(skim.ECONFIG, "generateTimeout: must be positive")
	}
	if c.BatchSize < 1 {
		return skim.Errorf(skim.ECONFIG, "batchSize: must be at least 1")
	}
	if c.RequestDelay < 0 {
		return skim.Errorf(skim.ECONFIG, "requestDelay: must not be negative")
	}
	if c.MinWords < 1 {
		return skim.Errorf(skim.ECONFIG, "minWords: must be at least 1")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return skim.Errorf(skim.ECONFIG, "logFormat: unknown format %q", c.LogFormat)
	}
	return nil
}

// ModelName returns the configured model or the provider default.
func (c *Config) ModelName() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderOpenAI {
		return openai.DefaultModel
	}
	return gemini.DefaultModel
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, skim.Errorf(skim.ECONFIG, "logLevel: unknown level %q", s)
	}
	return level, nil
}

// NewLogger builds the process logger writing to w.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
