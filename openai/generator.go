// Package openai implements skim.Generator against any OpenAI-compatible
// chat completions endpoint, including local inference servers.
package openai

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fwojciec/skim"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = "You are a news summarizer. Summarize the article you are given " +
	"in plain prose. Keep names, numbers and dates accurate, do not add facts that are " +
	"not in the article, and do not include a title, bullet points or commentary."

// Client is the subset of *openai.Client the generator needs.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ModelLister is implemented by clients that can enumerate served models.
type ModelLister interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Ensure Generator implements skim.Generator at compile time.
var _ skim.Generator = (*Generator)(nil)

// Generator implements skim.Generator with chat completions.
type Generator struct {
	client Client
	model  string
}

// NewGenerator creates a new Generator for model.
func NewGenerator(client Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate returns a summary of req.Text.
func (g *Generator) Generate(ctx context.Context, req skim.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", skim.Errorf(skim.EINVALID, "text required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, BuildRequest(g.model, req))
	if err != nil {
		return "", skim.WrapError(skim.EGENERATE, err, "chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", skim.Errorf(skim.EGENERATE, "model returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildRequest maps a summary request onto a chat completion request.
func BuildRequest(model string, req skim.GenerateRequest) openai.ChatCompletionRequest {
	// A zero temperature is dropped by omitempty and the server default
	// applies instead, so greedy decoding is sent as the smallest float.
	temp := req.Temperature
	if temp == 0 {
		temp = math.SmallestNonzeroFloat32
	}
	seed := int(req.Seed)
	minWords, maxWords := req.MinTokens*3/4, req.MaxTokens*3/4
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(
				"Write a %s of %d to %d words.\n\n<article>\n%s\n</article>",
				strings.ToLower(req.Length.Description()), minWords, maxWords, req.Text)},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: temp,
		TopP:        req.TopP,
		Seed:        &seed,
		N:           1,
	}
}
