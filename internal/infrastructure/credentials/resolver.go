// Package credentials resolves provider API keys from environment variables,
// falling back to the macOS keychain.
package credentials

import (
	"os"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/ports"
)

// Environment variables consulted, in resolution order. The universal
// override wins over provider-specific names, which win over the legacy
// names shared with other tools.
const (
	envUniversalKey = "SMSH_API_KEY"

	envOpenAIKey       = "SMSH_OPENAI_API_KEY"
	envOpenAILegacyKey = "OPENAI_API_KEY"

	envAnthropicKey       = "SMSH_ANTHROPIC_API_KEY"
	envAnthropicLegacyKey = "ANTHROPIC_API_KEY"
)

// keychainServices maps each provider to its fixed keychain service name.
var keychainServices = map[domain.Provider]string{
	domain.ProviderOpenAI: "smartshell.openai",
	domain.ProviderClaude: "smartshell.anthropic",
}

// Resolver performs the environment-then-keychain lookup. It holds no state;
// every call re-resolves from scratch.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve implements ports.CredentialResolver. Empty values are treated the
// same as absent ones at every step.
func (r *Resolver) Resolve(provider domain.Provider) (string, bool) {
	if key := os.Getenv(envUniversalKey); key != "" {
		return key, true
	}

	var names []string
	switch provider {
	case domain.ProviderOpenAI:
		names = []string{envOpenAIKey, envOpenAILegacyKey}
	case domain.ProviderClaude:
		names = []string{envAnthropicKey, envAnthropicLegacyKey}
	default:
		return "", false
	}

	for _, name := range names {
		if key := os.Getenv(name); key != "" {
			return key, true
		}
	}

	if key, err := keychainLookup(provider); err == nil && key != "" {
		return key, true
	}
	return "", false
}

var _ ports.CredentialResolver = (*Resolver)(nil)
