// Package llm is the gateway to the remote completion service used for column
// inference and translation.
package llm

import (
	"context"
	"errors"
)

// Sampling parameters shared by every provider.
const (
	MaxTokens   = 2000
	Temperature = 0
)

var (
	// ErrConfiguration means endpoint or credential settings are absent.
	// It is detected when a provider is constructed, never mid-run.
	ErrConfiguration = errors.New("llm gateway is not configured")

	// ErrTransport covers connection failures and non-2xx responses.
	ErrTransport = errors.New("llm request failed")

	// ErrFormat means the response did not have the expected shape.
	ErrFormat = errors.New("llm response has unexpected format")
)

// Provider abstracts the completion service for testability.
type Provider interface {
	// Complete sends prompt and returns the raw completion text. When
	// structured is true the service is asked for a single JSON object.
	Complete(ctx context.Context, prompt string, structured bool) (string, error)
}
