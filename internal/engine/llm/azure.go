package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/irahardianto/qa2md/internal/platform/logger"
	"github.com/tidwall/gjson"
)

// AzureOptions addresses one Azure OpenAI chat-completion deployment.
type AzureOptions struct {
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// AzureProvider implements Provider against the Azure OpenAI REST API.
type AzureProvider struct {
	url    string
	apiKey string
	http   *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// contentPath locates the completion text in a chat-completion response.
const contentPath = "choices.0.message.content"

// NewAzureProvider validates opts and returns a ready provider.
// Returns ErrConfiguration when any field is empty.
func NewAzureProvider(opts AzureOptions) (*AzureProvider, error) {
	var missing []string
	if opts.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if opts.APIKey == "" {
		missing = append(missing, "api key")
	}
	if opts.Deployment == "" {
		missing = append(missing, "deployment")
	}
	if opts.APIVersion == "" {
		missing = append(missing, "api version")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: azure %s missing", ErrConfiguration, strings.Join(missing, ", "))
	}

	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &AzureProvider{
		url:    chatCompletionsURL(opts.Endpoint, opts.Deployment, opts.APIVersion),
		apiKey: opts.APIKey,
		http:   client,
	}, nil
}

func chatCompletionsURL(endpoint, deployment, version string) string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(endpoint, "/"),
		url.PathEscape(deployment),
		url.QueryEscape(version))
}

// Complete posts a single-message chat completion request.
func (p *AzureProvider) Complete(ctx context.Context, prompt string, structured bool) (string, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	body := chatRequest{
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}
	if structured {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}
	req.Header.Set("api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	log.Debug("LLM request", "structured", structured, "prompt_chars", len(prompt))

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, snippet(raw))
	}

	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("%w: body is not JSON", ErrFormat)
	}
	content := gjson.GetBytes(raw, contentPath)
	if !content.Exists() || content.Type != gjson.String {
		return "", fmt.Errorf("%w: %s not found", ErrFormat, contentPath)
	}

	log.Debug("LLM response",
		"structured", structured,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return content.String(), nil
}

// snippet trims an error body for inclusion in messages.
func snippet(b []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
