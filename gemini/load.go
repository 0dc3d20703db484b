package gemini

import (
	"context"

	"github.com/fwojciec/skim"
	"google.golang.org/genai"
)

// Config holds what is needed to reach the Gemini API.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewClient creates a Gemini API client.
func NewClient(ctx context.Context, cfg Config) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, skim.Errorf(skim.ECONFIG, "GEMINI_API_KEY is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, skim.WrapError(skim.EGENERATE, err, "failed to create gemini client")
	}
	return client, nil
}

// Load returns a loader that creates a client and confirms the model
// exists before handing out a Generator.
func Load(cfg Config) func(ctx context.Context) (skim.Generator, error) {
	return func(ctx context.Context) (skim.Generator, error) {
		client, err := NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		model := cfg.Model
		if model == "" {
			model = DefaultModel
		}
		if _, err := client.Models.Get(ctx, model, nil); err != nil {
			return nil, skim.WrapError(skim.EGENERATE, err, "gemini model %q unavailable", model)
		}
		return NewGenerator(client, model), nil
	}
}
