package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Plain reports progress as one line per event, for piped output and CI logs.
type Plain struct {
	mu     sync.Mutex
	w      io.Writer
	label  string
	ok     *color.Color
	failed *color.Color
	step   *color.Color
}

// NewPlain creates a Plain reporter writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{
		w:      w,
		ok:     color.New(color.FgGreen),
		failed: color.New(color.FgRed),
		step:   color.New(color.FgCyan),
	}
}

// Start prints the step label.
func (p *Plain) Start(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.label = message
	fmt.Fprintf(p.w, "%s %s\n", p.step.Sprint("-"), message)
}

// Succeed prints the last label with a success mark.
func (p *Plain) Succeed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "%s %s\n", p.ok.Sprint(successGlyph), p.label)
	p.label = ""
}

// Print writes message followed by a newline.
func (p *Plain) Print(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, message)
}

// Fail prints message with a failure mark.
func (p *Plain) Fail(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "%s %s\n", p.failed.Sprint(failureGlyph), message)
	p.label = ""
}
