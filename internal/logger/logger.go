// Package logger wraps charm/log with helpers for conversion events.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "md2docx",
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard, log.FatalLevel)
}

// LevelFor maps the CLI verbosity flags to a level.
// Quiet wins over verbose.
func LevelFor(quiet, verbose bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.WarnLevel
	}
}

// ConfigLoaded logs which config file was applied.
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded", "path", path)
}

// InputParsed logs the element count of a parsed document.
func (l *Logger) InputParsed(path, encoding string, elements int) {
	l.Debug("input parsed",
		"path", path,
		"encoding", encoding,
		"elements", elements)
}

// HTMLWritten logs the intermediate markup file.
func (l *Logger) HTMLWritten(path string, size int) {
	l.Info("html written",
		"path", path,
		"bytes", size)
}

// HostSelected logs the backend chosen by probing.
func (l *Logger) HostSelected(name string, skipped []string) {
	l.Info("host selected",
		"host", name,
		"skipped", skipped)
}

// HandoffStarted logs the start of the host conversion.
func (l *Logger) HandoffStarted(host, src, dst string, timeout time.Duration) {
	l.Debug("handoff started",
		"host", host,
		"source", src,
		"dest", dst,
		"timeout", timeout)
}

// HandoffFinished logs a successful host conversion.
func (l *Logger) HandoffFinished(host, dst string, duration time.Duration) {
	l.Info("document saved",
		"host", host,
		"dest", dst,
		"duration", duration.Round(time.Millisecond))
}

// HandoffFailed logs a failed host conversion.
func (l *Logger) HandoffFailed(host string, err error) {
	l.Error("conversion failed",
		"host", host,
		"error", err)
}

// CleanupFailed logs a release step that did not succeed.
func (l *Logger) CleanupFailed(step string, err error) {
	l.Warn("cleanup failed",
		"step", step,
		"error", err)
}
