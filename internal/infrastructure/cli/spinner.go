package cli

import (
	"fmt"
	"io"
	"os"
)

// spinnerFrames is the glyph cycle drawn while a call is in flight.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner redraws a single-character animation in place on the controlling
// terminal. Rendering is best-effort: with no terminal writer every method is
// a no-op, so redirected output never sees spinner bytes.
type Spinner struct {
	writer io.Writer
	frame  int
}

// NewSpinner creates a Spinner drawing to w. A nil writer disables drawing.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{writer: w}
}

// Tick draws the next frame, advancing the cycle.
func (s *Spinner) Tick() {
	if s.writer == nil {
		return
	}
	fmt.Fprintf(s.writer, "\r%s", spinnerFrames[s.frame%len(spinnerFrames)])
	s.frame++
}

// Clear erases the spinner line.
func (s *Spinner) Clear() {
	if s.writer == nil {
		return
	}
	fmt.Fprint(s.writer, "\r\x1b[K")
}

// openTTY opens the controlling terminal for writing, or returns nil when it
// cannot be opened (stdout redirected, no terminal attached).
func openTTY() io.Writer {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return nil
	}
	return tty
}
