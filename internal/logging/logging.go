// Package logging provides a small structured-logging wrapper shared
// by the engine and the CLI, in the idiom of the reference cluster
// tool's internal/logging package: a single charmbracelet/log logger,
// level-gated, writing to stderr so stdout stays free for CLI output
// formats (text/JSON/CSV).
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger wraps a charmbracelet/log.Logger with the handful of methods
// the engine and CLI actually call.
type Logger struct {
	inner *log.Logger
}

// New returns a Logger writing to w at the given level ("debug",
// "info", "warn", "error"; unrecognized values fall back to "info").
func New(w io.Writer, level string) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	l.SetLevel(parseLevel(level))
	return &Logger{inner: l}
}

// Default returns a Logger at info level writing to stderr, used
// wherever no explicit logger has been configured.
func Default() *Logger {
	return New(os.Stderr, "info")
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.inner.Debugf(format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.inner.Infof(format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.inner.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.inner.Errorf(format, args...)
}
