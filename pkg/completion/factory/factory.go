package factory

import (
	"fmt"

	"eva-support-be/pkg/completion"
	"eva-support-be/pkg/completion/ollama"
	"eva-support-be/pkg/completion/openai"
)

func NewProvider(providerType, modelName, openAIBaseURL, openAIKey, ollamaBaseURL string) (completion.Provider, error) {
	switch providerType {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("missing OPENAI_API_KEY environment variable")
		}
		if openAIBaseURL == "" {
			openAIBaseURL = "https://api.openai.com/v1" // Default
		}
		return openai.NewOpenAIProvider(openAIBaseURL, openAIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
