package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter reads an interactive query from standard input when none was
// supplied on the command line.
type Prompter struct {
	in  *bufio.Reader
	raw io.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio. Nil arguments default
// to os.Stdin / os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		raw: in,
		out: out,
	}
}

// ReadQuery prompts for and reads a single-line query, trimmed of
// surrounding whitespace. EOF yields an empty query, which callers treat as
// an abort. The prompt text is suppressed when stdin is not a terminal so
// piped input stays clean.
func (p *Prompter) ReadQuery() (string, error) {
	if p.interactive() {
		fmt.Fprint(p.out, "> Query: ")
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) interactive() bool {
	file, ok := p.raw.(*os.File)
	if !ok {
		// injected readers (tests) always see the prompt
		return true
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
