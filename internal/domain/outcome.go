package domain

// Operation names the CLI operation being dispatched. It doubles as the
// operation tag written to the call log.
type Operation string

const (
	OperationComplete Operation = "complete"
	OperationExplain  Operation = "explain"
)

// Exit codes surfaced to the invoking shell integration.
const (
	// ExitCommand means stdout carries a ready-to-run command.
	ExitCommand = 0
	// ExitError means an infrastructure failure, or a success whose text is
	// an explanatory comment rather than an executable command.
	ExitError = 1
	// ExitRefused means the model understood the request but declined it.
	ExitRefused = 2
)

// Outcome is the dispatched result of one invocation: the text to print, the
// text to log, and the process exit code.
type Outcome struct {
	Stdout   string
	LogText  string
	ExitCode int
}
