package factory

import (
	"fmt"
	"time"

	"support-chatbot-be/pkg/llm"
	"support-chatbot-be/pkg/llm/huggingface"
	"support-chatbot-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured generator backend. The timeout
// bounds a single generation call end to end.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		return ollama.NewProvider(baseURL, modelName, timeout), nil
	case "huggingface":
		return huggingface.NewProvider(apiKey, "", modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
