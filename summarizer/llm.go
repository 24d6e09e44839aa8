package summarizer

import (
	"context"
	"fmt"

	"paper-letter/config"

	"google.golang.org/genai"
)

// LLM is the minimal generation surface the summarizer needs. Tests
// substitute a fake; production wiring uses GeminiLLM.
type LLM interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (*GenerateResult, error)
}

// GenerateResult carries one model response plus its usage metadata.
type GenerateResult struct {
	Text         string
	ModelName    string
	ModelVersion string
	TokenUsage   TokenUsage
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// GeminiLLM implements LLM on top of the Gemini API.
type GeminiLLM struct {
	client *genai.Client
	model  string
}

func NewGeminiLLM(ctx context.Context) (*GeminiLLM, error) {
	cfg := config.GetConfig()
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiLLM{client: client, model: cfg.GeminiModel}, nil
}

func (g *GeminiLLM) Generate(ctx context.Context, systemInstruction, prompt string) (*GenerateResult, error) {
	result, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
	)
	if err != nil {
		return nil, err
	}

	out := &GenerateResult{
		Text:         result.Text(),
		ModelName:    g.model,
		ModelVersion: result.ModelVersion,
	}
	if result.UsageMetadata != nil {
		out.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}
