package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	successGlyph = "✔"
	failureGlyph = "✖"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// UI renders an animated spinner per indication. Each Start runs its own
// Bubble Tea program; Succeed and Fail stop it and leave a final status line.
type UI struct {
	mu     sync.Mutex
	w      io.Writer
	active *indication
}

type indication struct {
	program *tea.Program
	done    chan struct{}
}

// NewUI creates a spinner UI writing to w.
func NewUI(w io.Writer) *UI {
	return &UI{w: w}
}

// Start replaces any active spinner with a new one labeled message.
func (u *UI) Start(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	// stop previous spinner if exists
	u.finishLocked(finishMsg{})

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(u.w), tea.WithInput(nil))
	ind := &indication{program: p, done: make(chan struct{})}
	go func() {
		defer close(ind.done)
		_, _ = p.Run()
	}()
	u.active = ind
}

// Succeed stops the spinner with a success mark.
func (u *UI) Succeed() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.finishLocked(finishMsg{ok: true})
}

// Print writes message followed by a newline.
func (u *UI) Print(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.w, message)
}

// Fail stops the spinner with message, or prints it when none is active.
func (u *UI) Fail(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.active == nil {
		fmt.Fprintln(u.w, failureStyle.Render(failureGlyph)+" "+message)
		return
	}
	u.finishLocked(finishMsg{failed: true, text: message})
}

// finishLocked stops the active program and waits for its last frame.
func (u *UI) finishLocked(msg finishMsg) {
	if u.active == nil {
		return
	}
	u.active.program.Send(msg)
	<-u.active.done
	u.active = nil
}

type finishMsg struct {
	ok     bool
	failed bool
	text   string
}

type spinnerModel struct {
	label  string
	spin   spinner.Model
	result *finishMsg
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return spinnerModel{label: label, spin: s}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case finishMsg:
		m.result = &msg
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	switch {
	case m.result == nil:
		return m.spin.View() + " " + m.label
	case m.result.failed:
		return failureStyle.Render(failureGlyph) + " " + m.result.text + "\n"
	case m.result.ok:
		return successStyle.Render(successGlyph) + " " + m.label + "\n"
	default:
		// replaced by a newer indication
		return ""
	}
}
