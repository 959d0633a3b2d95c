package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService generates answers through Google's Gemini API. It is the
// alternate provider behind AIService; OpenAI stays the default.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiService creates a Gemini client configured like the OpenAI one:
// same system instruction, same response cap and temperature.
func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.SetMaxOutputTokens(answerMaxTokens)
	model.SetTemperature(answerTemperature)

	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

// Complete sends one prompt and returns the model's reply text, trimmed.
func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no response generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// Close releases the underlying API client.
func (s *GeminiService) Close() error {
	return s.client.Close()
}
