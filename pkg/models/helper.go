package models

import (
	"context"
	"fmt"
)

// NewTextModel constructs the configured text/chat provider. The media and
// admin surfaces always come from Gemini; this switch only selects who
// answers plain generateText and chat actions.
func NewTextModel(ctx context.Context, provider, model string) (TextModel, error) {
	switch provider {
	case "openai":
		return NewOpenAILLM(model), nil
	case "", "gemini", "google":
		return NewGeminiLLM(ctx, GeminiOptions{Model: model})
	case "ollama":
		return NewOllamaLLM(model)
	case "anthropic", "claude":
		return NewAnthropicLLM(model), nil
	case "dummy":
		return NewDummyLLM(""), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
