package factory

import (
	"fmt"

	"hr-assist-be/pkg/llm"
	"hr-assist-be/pkg/llm/groq"
	"hr-assist-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, groqAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "groq":
		if groqAPIKey == "" {
			return nil, fmt.Errorf("groq provider requires GROQ_API_KEY")
		}
		return groq.NewGroqProvider(groqAPIKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
