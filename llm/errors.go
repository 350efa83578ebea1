package llm

import (
	"fmt"
	"time"
)

// RateLimitError indicates the provider returned a rate limit error (429).
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// ProviderUnavailableError indicates the provider is down or unreachable.
type ProviderUnavailableError struct {
	Err error
}

func (e *ProviderUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ProviderUnavailableError) Unwrap() error { return e.Err }

// EmptyResponseError indicates the model replied with no usable content.
type EmptyResponseError struct {
	Model string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty response from model %s", e.Model)
}
