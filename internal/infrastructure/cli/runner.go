package cli

import (
	"errors"
	"io"
	"time"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/ports"
)

// Runner executes a blocking provider call on a worker goroutine while the
// calling goroutine polls for the result and keeps the terminal responsive.
// One worker, one buffered channel, exactly one delivery; a worker that
// panics closes the channel without a value, which the poll loop reports as
// its own failure mode.
type Runner struct {
	interval time.Duration
	tty      io.Writer
}

// NewRunner creates a Runner drawing to the controlling terminal at the
// standard cadence.
func NewRunner() *Runner {
	return &Runner{
		interval: domain.SpinnerInterval,
		tty:      openTTY(),
	}
}

type callResult struct {
	text string
	err  error
}

// Run implements ports.CallRunner.
func (r *Runner) Run(call func() (string, error)) (string, error) {
	results := make(chan callResult, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				close(results)
			}
		}()
		text, err := call()
		results <- callResult{text: text, err: err}
	}()

	spinner := NewSpinner(r.tty)
	for {
		select {
		case res, ok := <-results:
			spinner.Clear()
			if !ok {
				return "", errors.New("Background thread failed")
			}
			return res.text, res.err
		default:
			spinner.Tick()
			time.Sleep(r.interval)
		}
	}
}

var _ ports.CallRunner = (*Runner)(nil)
