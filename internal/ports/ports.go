// Package ports defines the interfaces between the application core and the
// infrastructure adapters. The services depend on these abstractions only;
// concrete implementations live under internal/infrastructure.
package ports

import (
	"context"

	"github.com/doeshing/smsh/internal/domain"
)

// CredentialResolver looks up a provider's API key. Resolution is performed
// fresh on every call; implementations never cache.
type CredentialResolver interface {
	Resolve(provider domain.Provider) (string, bool)
}

// Provider is one upstream LLM API constrained to the two-field structured
// response. Call returns the model's result text on success; a model-declared
// refusal is returned as a *domain.RefusalError, every other error is an
// infrastructure failure.
type Provider interface {
	Name() string
	Call(ctx context.Context, req domain.CallRequest) (string, error)
}

// ProviderFactory builds the provider client for a configured selection.
// An unrecognized provider value is a configuration error.
type ProviderFactory interface {
	ForProvider(provider domain.Provider, cfg domain.Config) (Provider, error)
}

// CallRunner executes a blocking provider call off the calling goroutine
// while keeping the terminal responsive, and delivers its result exactly
// once. A worker that dies without delivering is a distinct failure.
type CallRunner interface {
	Run(call func() (string, error)) (string, error)
}

// CallLogger appends one line per call to the configured log file.
// Appending is best-effort and never affects the invocation's outcome.
type CallLogger interface {
	Append(op domain.Operation, query, result string)
}

// Logger is the structured debug logging abstraction for the application
// layer, distinct from the call log above.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
