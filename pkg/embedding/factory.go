package embedding

import "fmt"

// NewProvider selects the embedding backend by name. Ollama is the only
// backend wired today; EMBEDDING_PROVIDER stays authoritative so a typo
// fails at startup instead of silently embedding with the wrong model.
func NewProvider(providerType, baseURL, model string) (EmbeddingProvider, error) {
	switch providerType {
	case "ollama":
		return NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
