package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeMapping(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Fatalf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(NewExitError(2)); got != 2 {
		t.Fatalf("ExitCode(exit 2) = %d", got)
	}
	if got := ExitCode(errors.New("boom")); got != 1 {
		t.Fatalf("ExitCode(plain error) = %d", got)
	}
}

func TestNewExitErrorZeroIsNil(t *testing.T) {
	if err := NewExitError(0); err != nil {
		t.Fatalf("NewExitError(0) = %v, want nil", err)
	}
}

func TestIsExitErrorSeesWrappedCarriers(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NewExitError(1))
	if !IsExitError(wrapped) {
		t.Fatal("wrapped exit error not recognized")
	}
	if IsExitError(errors.New("boom")) {
		t.Fatal("plain error misclassified as exit carrier")
	}
}
