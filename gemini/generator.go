package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/skim"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// systemInstruction frames every request as news summarization.
const systemInstruction = "You are a news summarizer. Summarize the article you are given " +
	"in plain prose. Keep names, numbers and dates accurate, do not add facts that are " +
	"not in the article, and do not include a title, bullet points or commentary."

// Ensure Generator implements skim.Generator at compile time.
var _ skim.Generator = (*Generator)(nil)

// Generator implements skim.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator for model.
func NewGenerator(client *genai.Client, model string) *Generator {
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

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: BuildUserPrompt(req)}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", skim.WrapError(skim.EGENERATE, err, "gemini request failed")
	}
	if result == nil {
		return "", skim.Errorf(skim.EGENERATE, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for a summary request.
func BuildConfig(req skim.GenerateRequest) *genai.GenerateContentConfig {
	temp := req.Temperature
	topP := req.TopP
	seed := req.Seed
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:     &temp,
		TopP:            &topP,
		Seed:            &seed,
		MaxOutputTokens: int32(req.MaxTokens),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}
}

// BuildUserPrompt states the target length and wraps the article text.
func BuildUserPrompt(req skim.GenerateRequest) string {
	minWords, maxWords := TargetWords(req.MinTokens, req.MaxTokens)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a %s of %d to %d words.\n\n", strings.ToLower(req.Length.Description()), minWords, maxWords)
	sb.WriteString("<article>\n")
	sb.WriteString(req.Text)
	sb.WriteString("\n</article>")
	return sb.String()
}

// TargetWords converts token bounds to approximate word counts at three
// words per four tokens.
func TargetWords(minTokens, maxTokens int) (int, int) {
	return minTokens * 3 / 4, maxTokens * 3 / 4
}
