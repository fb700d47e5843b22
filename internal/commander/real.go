package commander

import (
	"context"
	"os"
	"os/exec"
)

// Real implements Commander using actual system commands
type Real struct {
	// Env is appended to the inherited environment of every command.
	Env []string
}

// NewReal creates a real commander
func NewReal(env ...string) Commander {
	return &Real{Env: env}
}

// LookPath checks if a command exists
func (r *Real) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes a command and returns its combined output.
// A non-zero exit status is reported as an *exec.ExitError.
func (r *Real) Run(ctx context.Context, name string, args []string, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	output, err := cmd.CombinedOutput()
	return string(output), err
}
