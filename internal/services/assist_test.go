package services

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/pkg/logger"
	"github.com/doeshing/smsh/internal/ports"
)

func newTestService(factory ports.ProviderFactory, callLog ports.CallLogger) *Service {
	return &Service{
		Config:  domain.Config{Provider: domain.ProviderOpenAI},
		Factory: factory,
		Runner:  inlineRunner{},
		CallLog: callLog,
		Logger:  logger.New(false),
	}
}

func TestCompleteReturnsCommandOutcome(t *testing.T) {
	callLog := &recordingLog{}
	svc := newTestService(stubFactory{provider: stubProvider{result: "ls -a"}}, callLog)

	outcome, err := svc.Complete(context.Background(), "ls", "hidden files too")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if outcome.Stdout != "ls -a" || outcome.ExitCode != 0 {
		t.Fatalf("outcome = %+v, want stdout %q exit 0", outcome, "ls -a")
	}
	callLog.expectOne(t, domain.OperationComplete, "hidden files too", "ls -a")
}

func TestCompleteRefusalExitsTwoWithCommentOutput(t *testing.T) {
	callLog := &recordingLog{}
	refusal := &domain.RefusalError{Message: "This is destructive and ambiguous"}
	svc := newTestService(stubFactory{provider: stubProvider{err: refusal}}, callLog)

	outcome, err := svc.Complete(context.Background(), "", "reformat my entire disk")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if outcome.Stdout != "# This is destructive and ambiguous" {
		t.Fatalf("stdout = %q", outcome.Stdout)
	}
	if outcome.ExitCode != 2 {
		t.Fatalf("exit code = %d, want 2", outcome.ExitCode)
	}
	callLog.expectOne(t, domain.OperationComplete, "reformat my entire disk", "REFUSED: This is destructive and ambiguous")
}

func TestCompleteMissingKeyIsInfrastructureError(t *testing.T) {
	callLog := &recordingLog{}
	svc := newTestService(stubFactory{provider: stubProvider{err: errors.New("OpenAI API key not set")}}, callLog)

	outcome, err := svc.Complete(context.Background(), "", "list files")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if outcome.Stdout != "OpenAI API key not set" || outcome.ExitCode != 1 {
		t.Fatalf("outcome = %+v, want key error with exit 1", outcome)
	}
	callLog.expectOne(t, domain.OperationComplete, "list files", "ERROR: OpenAI API key not set")
}

func TestCompleteUnknownProviderSurfacesAsError(t *testing.T) {
	callLog := &recordingLog{}
	svc := newTestService(stubFactory{err: errors.New("Unknown provider: foo")}, callLog)

	outcome, err := svc.Complete(context.Background(), "", "list files")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if outcome.ExitCode != 1 {
		t.Fatalf("exit code = %d, want 1", outcome.ExitCode)
	}
	callLog.expectOne(t, domain.OperationComplete, "list files", "ERROR: Unknown provider: foo")
}

func TestExplainFormatsSuccessAsComment(t *testing.T) {
	callLog := &recordingLog{}
	svc := newTestService(stubFactory{provider: stubProvider{result: "Recursively deletes /tmp/x"}}, callLog)

	outcome, err := svc.Explain(context.Background(), "rm -rf /tmp/x")
	if err != nil {
		t.Fatalf("Explain() error = %v", err)
	}
	if outcome.Stdout != "# Recursively deletes /tmp/x" || outcome.ExitCode != 0 {
		t.Fatalf("outcome = %+v", outcome)
	}
	callLog.expectOne(t, domain.OperationExplain, "rm -rf /tmp/x", "Recursively deletes /tmp/x")
}

func TestServiceRejectsMissingDependencies(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Complete(context.Background(), "", "x"); err == nil {
		t.Fatal("expected dependency error")
	}
	if _, err := svc.Explain(context.Background(), "x"); err == nil {
		t.Fatal("expected dependency error")
	}
}

// ---- stubs ----

type stubProvider struct {
	result string
	err    error
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) Call(context.Context, domain.CallRequest) (string, error) {
	return s.result, s.err
}

type stubFactory struct {
	provider ports.Provider
	err      error
}

func (s stubFactory) ForProvider(domain.Provider, domain.Config) (ports.Provider, error) {
	return s.provider, s.err
}

// inlineRunner executes the call synchronously; no spinner in tests.
type inlineRunner struct{}

func (inlineRunner) Run(call func() (string, error)) (string, error) {
	return call()
}

type loggedCall struct {
	op     domain.Operation
	query  string
	result string
}

type recordingLog struct {
	entries []loggedCall
}

func (r *recordingLog) Append(op domain.Operation, query, result string) {
	r.entries = append(r.entries, loggedCall{op: op, query: query, result: result})
}

func (r *recordingLog) expectOne(t *testing.T, op domain.Operation, query, result string) {
	t.Helper()
	if len(r.entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(r.entries))
	}
	got := r.entries[0]
	want := loggedCall{op: op, query: query, result: result}
	if got != want {
		t.Fatalf("log entry = %+v, want %+v", got, want)
	}
}
