package picker

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// genaiGenerator is the production Generator backed by the Gemini API.
type genaiGenerator struct {
	client      *genai.Client
	temperature float32
	maxTokens   int32
}

func newGenaiGenerator(ctx context.Context, apiKey string, temperature float32, maxTokens int32) (*genaiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientCreationFailed, err)
	}
	return &genaiGenerator{
		client:      client,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

func (g *genaiGenerator) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var out []ModelInfo
	for model, err := range g.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		out = append(out, ModelInfo{
			Name:    model.Name,
			Actions: model.SupportedActions,
		})
	}
	return out, nil
}

// GenerateText returns the API error unwrapped beyond a message prefix so
// callers can still detect quota conditions with errors.As.
func (g *genaiGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
