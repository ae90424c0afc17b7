// Package services implements the use cases behind the CLI: building prompts,
// orchestrating the background provider call, and dispatching the outcome.
package services

import (
	"context"
	"errors"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/ports"
)

// Service runs the complete and explain operations end to end. Dependencies
// are injected as ports; the CLI layer supplies the runner after wiring since
// it owns the terminal.
type Service struct {
	Config  domain.Config
	Factory ports.ProviderFactory
	Runner  ports.CallRunner
	CallLog ports.CallLogger
	Logger  ports.Logger
}

// Complete generates a zsh command for query, or alters buffer to satisfy it.
// The returned outcome carries everything the CLI needs: stdout text and the
// exit code. The call log entry is written here, keyed by the raw query.
func (s *Service) Complete(ctx context.Context, buffer, query string) (domain.Outcome, error) {
	if err := s.checkDependencies(); err != nil {
		return domain.Outcome{}, err
	}

	result, err := s.call(ctx, BuildCompleteRequest(buffer, query))
	outcome := Dispatch(domain.OperationComplete, result, err)
	s.CallLog.Append(domain.OperationComplete, query, outcome.LogText)
	return outcome, nil
}

// Explain asks the model for a one-line explanation of buffer.
func (s *Service) Explain(ctx context.Context, buffer string) (domain.Outcome, error) {
	if err := s.checkDependencies(); err != nil {
		return domain.Outcome{}, err
	}

	result, err := s.call(ctx, BuildExplainRequest(buffer))
	outcome := Dispatch(domain.OperationExplain, result, err)
	s.CallLog.Append(domain.OperationExplain, buffer, outcome.LogText)
	return outcome, nil
}

// call selects the configured provider and executes it through the runner so
// the terminal stays responsive during the network round-trip. Provider
// selection happens inside the worker: an unknown provider surfaces on the
// same path as every other infrastructure failure.
func (s *Service) call(ctx context.Context, req domain.CallRequest) (string, error) {
	return s.Runner.Run(func() (string, error) {
		provider, err := s.Factory.ForProvider(s.Config.Provider, s.Config)
		if err != nil {
			return "", err
		}
		s.Logger.Debug("calling provider", map[string]interface{}{
			"provider": provider.Name(),
			"prompt":   req.Prompt,
		})
		return provider.Call(ctx, req)
	})
}

func (s *Service) checkDependencies() error {
	if s.Factory == nil || s.Runner == nil || s.CallLog == nil || s.Logger == nil {
		return errors.New("services.Service dependencies not satisfied")
	}
	return nil
}
