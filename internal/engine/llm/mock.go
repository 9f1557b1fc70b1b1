package llm

import (
	"context"
)

// MockCall records one Complete invocation.
type MockCall struct {
	Prompt     string
	Structured bool
}

// MockProvider is a deterministic test double for Provider.
// Respond, when set, decides the reply; otherwise Result and Err are returned.
type MockProvider struct {
	Result  string
	Err     error
	Respond func(prompt string, structured bool) (string, error)
	Calls   []MockCall
}

// Complete records the call and returns the configured reply.
func (m *MockProvider) Complete(_ context.Context, prompt string, structured bool) (string, error) {
	m.Calls = append(m.Calls, MockCall{Prompt: prompt, Structured: structured})
	if m.Respond != nil {
		return m.Respond(prompt, structured)
	}
	return m.Result, m.Err
}
