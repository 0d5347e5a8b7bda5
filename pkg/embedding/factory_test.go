package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name         string
		providerType string
		wantErr      bool
	}{
		{name: "ollama", providerType: "ollama", wantErr: false},
		{name: "unknown provider", providerType: "openai", wantErr: true},
		{name: "empty provider", providerType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.providerType, "http://localhost:11434", "nomic-embed-text")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, provider)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, provider)
			}
		})
	}
}
