package logfile

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/doeshing/smsh/internal/domain"
)

var lineRe = regexp.MustCompile(`(?m)^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\] (\w+) \| query: (.*) \| result: (.*)$`)

func TestAppendWritesOneParseableLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smsh.log")
	appender := NewAppender(path, nil)

	appender.Append(domain.OperationComplete, "hidden files too", "ls -a")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	match := lineRe.FindStringSubmatch(string(data))
	if match == nil {
		t.Fatalf("log line %q does not match format", string(data))
	}
	if match[2] != "complete" || match[3] != "hidden files too" || match[4] != "ls -a" {
		t.Fatalf("round-trip mismatch: op=%q query=%q result=%q", match[2], match[3], match[4])
	}
}

func TestAppendFlattensNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smsh.log")
	appender := NewAppender(path, nil)

	appender.Append(domain.OperationExplain, "why\r\nso\nmany\rlines", "first\nsecond")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	match := lineRe.FindStringSubmatch(string(data))
	if match == nil {
		t.Fatalf("log line %q spans multiple lines", string(data))
	}
	if match[3] != "why so many lines" {
		t.Fatalf("query = %q", match[3])
	}
	if match[4] != "first second" {
		t.Fatalf("result = %q", match[4])
	}
}

func TestAppendIsAppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smsh.log")
	appender := NewAppender(path, nil)

	appender.Append(domain.OperationComplete, "one", "a")
	appender.Append(domain.OperationComplete, "two", "ERROR: Request failed: boom")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := len(lineRe.FindAllStringSubmatch(string(data), -1)); got != 2 {
		t.Fatalf("expected 2 log lines, got %d in %q", got, string(data))
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Fatalf("every entry must end with a newline, got %d in %q", got, string(data))
	}
}

func TestAppendDisabledWithoutPath(t *testing.T) {
	appender := NewAppender("", nil)
	appender.Append(domain.OperationComplete, "q", "r") // must not panic
}

func TestAppendFailureIsSwallowed(t *testing.T) {
	appender := NewAppender(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"), nil)
	appender.Append(domain.OperationComplete, "q", "r") // must not panic or error
}

func TestNilAppenderIsSafe(t *testing.T) {
	var appender *Appender
	appender.Append(domain.OperationComplete, "q", "r")
}
