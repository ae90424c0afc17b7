package cli

import (
	"errors"
	"fmt"
)

// exitError carries a process exit code through cobra's error return without
// producing any additional output; the outcome text has already been printed
// by the time one of these is created.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewExitError wraps a non-zero exit code for main to unwrap; a zero code
// yields nil.
func NewExitError(code int) error {
	if code == 0 {
		return nil
	}
	return exitError{code: code}
}

// IsExitError reports whether err is a bare exit-code carrier, as opposed to
// a real error that still needs printing.
func IsExitError(err error) bool {
	var exit exitError
	return errors.As(err, &exit)
}

// ExitCode extracts the process exit code from err: 0 for nil, the carried
// code for exit errors, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return 1
}
