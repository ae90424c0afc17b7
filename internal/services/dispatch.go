package services

import (
	"github.com/doeshing/smsh/internal/domain"
)

// Dispatch classifies one call result into the three-way outcome: success,
// infrastructure error, or model-declared refusal. Each maps to fixed stdout
// formatting, a log prefix, and a process exit code.
//
// For complete, a successful result that begins with a comment marker is an
// explanation rather than a command; it exits non-zero so the shell
// integration shows it without inserting it into the command line.
func Dispatch(op domain.Operation, result string, err error) domain.Outcome {
	if op == domain.OperationExplain {
		return dispatchExplain(result, err)
	}
	return dispatchComplete(result, err)
}

func dispatchComplete(result string, err error) domain.Outcome {
	if err == nil {
		code := domain.ExitCommand
		if len(result) > 0 && result[0] == '#' {
			code = domain.ExitError
		}
		return domain.Outcome{Stdout: result, LogText: result, ExitCode: code}
	}

	if refusal, ok := domain.AsRefusal(err); ok {
		return domain.Outcome{
			Stdout:   "# " + refusal.Message,
			LogText:  "REFUSED: " + refusal.Message,
			ExitCode: domain.ExitRefused,
		}
	}

	return domain.Outcome{
		Stdout:   err.Error(),
		LogText:  "ERROR: " + err.Error(),
		ExitCode: domain.ExitError,
	}
}

func dispatchExplain(result string, err error) domain.Outcome {
	if err == nil {
		return domain.Outcome{
			Stdout:   "# " + result,
			LogText:  result,
			ExitCode: domain.ExitCommand,
		}
	}
	// explain has no refusal path: every failure prints plainly and exits 1
	return domain.Outcome{
		Stdout:   err.Error(),
		LogText:  "ERROR: " + err.Error(),
		ExitCode: domain.ExitError,
	}
}
