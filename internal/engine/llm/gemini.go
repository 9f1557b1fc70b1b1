package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/irahardianto/qa2md/internal/platform/logger"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GenerativeClient abstracts the Gemini generative AI client for testability.
type GenerativeClient interface {
	// GenerateContent sends a prompt and returns a response.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates a GenerativeClient. Production code uses DefaultClientFactory;
// tests inject a factory that returns a mock.
type ClientFactory func(ctx context.Context, apiKey string) (GenerativeClient, error)

// genaiClient wraps the real genai.Client to satisfy GenerativeClient.
type genaiClient struct {
	inner *genai.Client
}

func (g *genaiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.inner.Models.GenerateContent(ctx, model, contents, config)
}

// DefaultClientFactory creates a real Gemini API client.
func DefaultClientFactory(ctx context.Context, apiKey string) (GenerativeClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &genaiClient{inner: c}, nil
}

// GeminiProvider implements Provider using the Google Gemini API.
type GeminiProvider struct {
	model  string
	client GenerativeClient
}

// NewGeminiProvider creates the underlying client once. An empty apiKey is
// reported as ErrConfiguration; a nil factory means DefaultClientFactory.
func NewGeminiProvider(ctx context.Context, apiKey, model string, factory ClientFactory) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini api key missing", ErrConfiguration)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	if factory == nil {
		factory = DefaultClientFactory
	}

	client, err := factory(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: creating Gemini client: %v", ErrConfiguration, err)
	}
	return &GeminiProvider{model: model, client: client}, nil
}

// Complete sends one prompt. Structured mode asks for an application/json reply.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string, structured bool) (string, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(Temperature)),
		MaxOutputTokens: MaxTokens,
	}
	if structured {
		config.ResponseMIMEType = "application/json"
	}

	log.Debug("LLM request", "model", p.model, "structured", structured, "prompt_chars", len(prompt))

	resp, err := p.client.GenerateContent(ctx, p.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}

	log.Debug("LLM response",
		"model", p.model,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// extractText pulls the text content from a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("empty response from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content parts in response")
	}
	part := candidate.Content.Parts[0]
	if part.Text == "" {
		return "", errors.New("empty text in response part")
	}
	return part.Text, nil
}
