// Package logging wraps github.com/charmbracelet/log with the info / error
// / debug severities of the vocabulary the teacher's own src/textcolor.go
// enumerates but never actually wired to a structured logger — the
// teacher's go.mod lists charmbracelet/log yet no source file imports it.
package logging

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the synchronizer's structured logger, used for acquisition
// transitions, soft resets, and squelch events.
type Logger struct {
	inner *charmlog.Logger
}

// New builds a Logger writing to stderr at the given level name
// ("debug", "info", "warn", "error"); an empty or unrecognized name
// defaults to info.
func New(level string) *Logger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix:          "flexsync",
		ReportTimestamp: true,
	})
	l.SetLevel(parseLevel(level))
	return &Logger{inner: l}
}

func parseLevel(level string) charmlog.Level {
	switch level {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

func (l *Logger) Debugf(format string, args ...any) { l.inner.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.inner.Infof(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.inner.Errorf(format, args...) }

// Nop returns a Logger that discards everything, for use in tests and as
// the default when the caller does not want synchronizer diagnostics.
func Nop() *Logger {
	l := charmlog.New(os.Stderr)
	l.SetLevel(charmlog.Level(99))
	return &Logger{inner: l}
}
