package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/fwojciec/skim"
	openai "github.com/sashabaranov/go-openai"
)

// Config holds what is needed to reach an OpenAI-compatible endpoint.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewClient creates a client for cfg. An API key is optional for local
// servers that do not check it.
func NewClient(cfg Config) *openai.Client {
	c := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(c)
}

// Load returns a loader that creates a client and, when the endpoint can
// list models, confirms the configured model is served.
func Load(cfg Config) func(ctx context.Context) (skim.Generator, error) {
	return func(ctx context.Context) (skim.Generator, error) {
		client := NewClient(cfg)
		model := cfg.Model
		if model == "" {
			model = DefaultModel
		}
		if err := VerifyModel(ctx, client, model); err != nil {
			return nil, err
		}
		return NewGenerator(client, model), nil
	}
}

// VerifyModel checks that model is listed by the endpoint. Endpoints
// without a models listing are accepted as-is.
func VerifyModel(ctx context.Context, lister ModelLister, model string) error {
	list, err := lister.ListModels(ctx)
	if err != nil {
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		if (errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusNotFound) ||
			(errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusNotFound) {
			return nil
		}
		return skim.WrapError(skim.EGENERATE, err, "failed to list models")
	}
	if len(list.Models) == 0 {
		return nil
	}
	for _, m := range list.Models {
		if m.ID == model {
			return nil
		}
	}
	return skim.Errorf(skim.EGENERATE, "model %q is not served by the endpoint", model)
}
