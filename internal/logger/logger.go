package logger

import (
	"fmt"
	"io"
	"os"
)

type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}

// Progress displays one labeled indication at a time for a long-running step.
type Progress interface {
	// Start begins a new indication, replacing any active one.
	Start(message string)
	// Succeed marks the active indication as completed.
	Succeed()
	// Print writes a message line.
	Print(message string)
	// Fail marks the active indication as failed with message.
	Fail(message string)
}

// WriterLogger writes log lines to an io.Writer.
type WriterLogger struct {
	w io.Writer
}

// NewWriterLogger creates a logger writing to w.
func NewWriterLogger(w io.Writer) *WriterLogger { return &WriterLogger{w: w} }

// Logf writes a formatted message as is.
func (l *WriterLogger) Logf(format string, args ...interface{}) { fmt.Fprintf(l.w, format, args...) }

// Log writes msg followed by a newline.
func (l *WriterLogger) Log(msg string) { fmt.Fprintln(l.w, msg) }

// IsInteractive reports whether stdout is attached to a terminal.
// Used to decide when to use interactive UI elements like spinners.
func IsInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	// If it's a pipe or regular file, it's not interactive
	return fi.Mode()&os.ModeCharDevice != 0
}

// NewProgress picks the spinner UI for terminals and plain lines otherwise.
func NewProgress(w io.Writer) Progress {
	if w == os.Stdout && IsInteractive() {
		return NewUI(w)
	}
	return NewPlain(w)
}
