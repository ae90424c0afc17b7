package services

import (
	"path/filepath"
	"testing"

	"github.com/doeshing/smsh/internal/domain"
)

type stubResolver struct {
	keys map[domain.Provider]string
}

func (s stubResolver) Resolve(provider domain.Provider) (string, bool) {
	key, ok := s.keys[provider]
	return key, ok && key != ""
}

func TestDoctorReportsCredentialPresence(t *testing.T) {
	svc := &DoctorService{
		Config:   domain.Config{Provider: domain.ProviderClaude},
		Resolver: stubResolver{keys: map[domain.Provider]string{domain.ProviderClaude: "sk-test"}},
	}

	report := svc.Run()
	statuses := map[string]domain.HealthStatus{}
	for _, check := range report.Checks {
		statuses[check.Name] = check.Status
	}

	if statuses["Provider"] != domain.HealthOK {
		t.Fatalf("Provider check = %v, want ok", statuses["Provider"])
	}
	if statuses["Anthropic key"] != domain.HealthOK {
		t.Fatalf("Anthropic key check = %v, want ok", statuses["Anthropic key"])
	}
	if statuses["OpenAI key"] != domain.HealthWarn {
		t.Fatalf("OpenAI key check = %v, want warn", statuses["OpenAI key"])
	}
}

func TestDoctorFlagsUnknownProvider(t *testing.T) {
	svc := &DoctorService{
		Config:   domain.Config{Provider: domain.Provider("llama9000")},
		Resolver: stubResolver{},
	}
	for _, check := range svc.Run().Checks {
		if check.Name == "Provider" && check.Status != domain.HealthWarn {
			t.Fatalf("Provider check = %v, want warn", check.Status)
		}
	}
}

func TestDoctorChecksLogWritability(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smsh.log")
	svc := &DoctorService{
		Config:   domain.Config{Provider: domain.ProviderOpenAI, LogPath: path},
		Resolver: stubResolver{},
	}
	for _, check := range svc.Run().Checks {
		if check.Name == "Call log" && check.Status != domain.HealthOK {
			t.Fatalf("Call log check = %+v, want ok", check)
		}
	}
}
