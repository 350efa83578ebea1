package llm

import "context"

// Provider is the abstraction over the generative-text service.
// Implementations return the model's raw text; callers are responsible
// for parsing it into whatever shape they asked for.
type Provider interface {
	// Generate sends a prompt to the model and returns its reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes a single-turn generation call.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Default 0.0.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the raw generated text, untrimmed.
	Text string

	// Model is the actual model that served the request.
	Model string
}
