package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/irahardianto/qa2md/internal/engine/config"
)

// NewProvider builds the provider selected in settings. Credential gaps are
// reported as ErrConfiguration before any request is attempted.
func NewProvider(ctx context.Context, s *config.Settings, factory ClientFactory) (Provider, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: settings not loaded", ErrConfiguration)
	}
	if missing := s.MissingCredentials(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: set %s (environment or .env)", ErrConfiguration, strings.Join(missing, ", "))
	}

	switch s.Provider {
	case config.ProviderAzure:
		return NewAzureProvider(AzureOptions{
			Endpoint:   s.Azure.Endpoint,
			APIKey:     string(s.Azure.APIKey),
			Deployment: s.Azure.Deployment,
			APIVersion: s.Azure.APIVersion,
		})
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, string(s.Gemini.APIKey), s.Gemini.Model, factory)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrConfiguration, s.Provider)
	}
}
