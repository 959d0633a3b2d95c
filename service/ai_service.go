package service

import (
	"context"
)

// Sampling settings shared by every provider: a response cap and a low
// temperature keep answers short and focused.
const (
	answerMaxTokens   = 500
	answerTemperature = 0.3
)

const systemInstruction = "You are a helpful TDS course Teaching Assistant."

// AIService is the completion boundary to an external language model.
// Implementations return an error on any transport or provider failure so
// the caller decides how to degrade.
type AIService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
