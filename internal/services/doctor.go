package services

import (
	"fmt"
	"os"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/ports"
)

// DoctorService reports environment readiness without performing any API
// call: provider selection, credential presence, and call-log writability.
type DoctorService struct {
	Config   domain.Config
	Resolver ports.CredentialResolver
}

// Run executes the checks and returns a report. Keys are never revealed,
// only their presence.
func (s *DoctorService) Run() domain.HealthReport {
	var checks []domain.HealthCheck

	if s.Config.Provider.Known() {
		checks = append(checks, ok("Provider", fmt.Sprintf("using %s", s.Config.Provider)))
	} else {
		checks = append(checks, warn("Provider", fmt.Sprintf("unknown provider %q", string(s.Config.Provider))))
	}

	checks = append(checks, s.credentialCheck("OpenAI key", domain.ProviderOpenAI))
	checks = append(checks, s.credentialCheck("Anthropic key", domain.ProviderClaude))
	checks = append(checks, s.logCheck())

	return domain.HealthReport{Checks: checks}
}

func (s *DoctorService) credentialCheck(name string, provider domain.Provider) domain.HealthCheck {
	if s.Resolver == nil {
		return warn(name, "credential resolver not initialized")
	}
	if _, found := s.Resolver.Resolve(provider); found {
		return ok(name, "API key found")
	}
	return warn(name, "API key not set")
}

func (s *DoctorService) logCheck() domain.HealthCheck {
	path := s.Config.LogPath
	if path == "" {
		return ok("Call log", "disabled (SMSH_LOG not set)")
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return warn("Call log", fmt.Sprintf("%s not writable: %v", path, err))
	}
	file.Close()
	return ok("Call log", fmt.Sprintf("appending to %s", path))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}
