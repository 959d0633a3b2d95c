package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIService generates answers through the OpenAI chat completion API.
// This is the default provider.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService creates a client. baseURL may be empty for the public
// API or point at an OpenAI-compatible proxy.
func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client: client,
		model:  model,
	}
}

// Complete sends one prompt and returns the model's reply text, trimmed.
func (s *OpenAIService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemInstruction,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Model:       s.model,
			MaxTokens:   answerMaxTokens,
			Temperature: answerTemperature,
		},
	)

	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
