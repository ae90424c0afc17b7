// Package ai implements the provider clients. Each upstream API gets one
// implementation of ports.Provider; the factory selects among them once per
// invocation based on the configured provider value.
package ai

import (
	"fmt"
	"net/http"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/ports"
)

// Factory builds provider clients. It owns the single HTTP client shared
// across providers; the client timeout is the only request deadline.
type Factory struct {
	httpClient *http.Client
	resolver   ports.CredentialResolver
}

// NewFactory creates a provider factory with a bounded HTTP client.
func NewFactory(resolver ports.CredentialResolver) *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
		resolver:   resolver,
	}
}

// ForProvider implements ports.ProviderFactory.
func (f *Factory) ForProvider(provider domain.Provider, cfg domain.Config) (ports.Provider, error) {
	switch provider {
	case domain.ProviderOpenAI:
		return newOpenAIProvider(cfg.OpenAI, f.httpClient, f.resolver), nil
	case domain.ProviderClaude:
		return newAnthropicProvider(cfg.Claude, f.httpClient, f.resolver), nil
	default:
		return nil, fmt.Errorf("Unknown provider: %s", provider)
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)
