// Package logger adapts zerolog to the ports.Logger interface.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZeroLogger routes structured debug logging to stderr. When verbose is off
// the logger is disabled entirely so scripted callers see nothing but the
// primary outcome on stdout.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a ZeroLogger. Verbose mode enables debug-level console output.
func New(verbose bool) *ZeroLogger {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return &ZeroLogger{
		log: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}
