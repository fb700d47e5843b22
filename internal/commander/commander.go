package commander

import "context"

// Commander abstracts command execution for testing
type Commander interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, name string, args []string, dir string) (output string, err error)
}
