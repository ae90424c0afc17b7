// Package domain defines the core entities and value objects for smsh.
//
// The domain layer is independent of infrastructure concerns: it knows nothing
// about HTTP, the terminal, or the keychain. Everything here is plain data
// passed between the CLI layer, the services, and the provider adapters.
package domain

// Provider identifies which upstream LLM API serves a call.
//
// The value is carried verbatim from configuration so that an unrecognized
// selection surfaces in the error message exactly as the user wrote it.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
)

// Known reports whether the provider maps to an implemented client.
func (p Provider) Known() bool {
	return p == ProviderOpenAI || p == ProviderClaude
}

// ModelDefinition describes the upstream endpoint and generation parameters
// for one provider, declared in the config file or hydrated from defaults.
type ModelDefinition struct {
	Endpoint  string `yaml:"endpoint"`
	ModelID   string `yaml:"model_id"`
	MaxTokens int    `yaml:"max_tokens"`
}
