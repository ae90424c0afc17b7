// Package logfile implements the append-only call log. The file is write-only
// from this program's perspective; nothing ever reads it back.
package logfile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/ports"
)

// newlineFlattener keeps every log entry on a single line.
var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Appender writes one line per call to the configured log file. An empty path
// disables it; write failures are reported at debug level and never alter the
// primary outcome.
type Appender struct {
	path string
	log  ports.Logger
}

// NewAppender creates an Appender for path. An empty path yields a no-op.
func NewAppender(path string, log ports.Logger) *Appender {
	return &Appender{path: path, log: log}
}

// Append implements ports.CallLogger.
func (a *Appender) Append(op domain.Operation, query, result string) {
	if a == nil || a.path == "" {
		return
	}

	file, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		a.warn("open call log", err)
		return
	}
	defer file.Close()

	line := fmt.Sprintf("[%s] %s | query: %s | result: %s\n",
		time.Now().Format(domain.LogTimestampFormat),
		op,
		newlineFlattener.Replace(query),
		newlineFlattener.Replace(result),
	)
	if _, err := file.WriteString(line); err != nil {
		a.warn("write call log", err)
	}
}

func (a *Appender) warn(msg string, err error) {
	if a.log == nil {
		return
	}
	a.log.Warn(msg, map[string]interface{}{"path": a.path, "error": err.Error()})
}

var _ ports.CallLogger = (*Appender)(nil)
