package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements GeminiService. It sends one self-contained
// prompt and waits for the complete response; there is no conversation
// state and no internal retry. Every failure mode of the round trip,
// including an empty response, comes back as a GenerationError.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 8192,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	if resp == nil {
		return "", &GenerationError{Err: fmt.Errorf("nil response from model")}
	}

	text := resp.Text()
	if text == "" {
		return "", &GenerationError{Err: fmt.Errorf("no text content in response")}
	}

	return text, nil
}
