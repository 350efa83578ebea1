package llm

import (
	"context"
	"fmt"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is one of "gemini", "openai", "mock".
	Provider string

	// APIKey is the credential for the selected provider.
	APIKey string

	// Model overrides the provider's default model when non-empty.
	Model string

	// BaseURL overrides the API endpoint (OpenAI-compatible gateways).
	BaseURL string
}

// NewProvider creates a Provider from configuration.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "", "gemini":
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
}
