package installer

import (
	"context"
	"fmt"

	"github.com/getlawrence/typed-install/internal/commander"
)

// Package manager binaries.
const (
	Npm  = "npm"
	Yarn = "yarn"
)

// Installer batch-installs packages with npm or yarn in a project directory.
type Installer struct {
	commander  commander.Commander
	projectDir string
}

// New creates an installer running commands in projectDir.
func New(commander commander.Commander, projectDir string) *Installer {
	return &Installer{commander: commander, projectDir: projectDir}
}

// Install runs a single package manager invocation for all names.
func (i *Installer) Install(ctx context.Context, names []string, dev, yarn bool) error {
	if len(names) == 0 {
		return nil
	}

	bin, args := Command(names, dev, yarn)
	if _, err := i.commander.LookPath(bin); err != nil {
		return fmt.Errorf("%s is not available: %w", bin, err)
	}

	if out, err := i.commander.Run(ctx, bin, args, i.projectDir); err != nil {
		return fmt.Errorf("%s install failed: %w\nOutput: %s", bin, err, out)
	}
	return nil
}

// Command returns the binary and arguments that install names.
func Command(names []string, dev, yarn bool) (string, []string) {
	bin, args, devFlag := Npm, []string{"install"}, "--save-dev"
	if yarn {
		bin, args, devFlag = Yarn, []string{"add"}, "--dev"
	}
	if dev {
		args = append(args, devFlag)
	}
	return bin, append(args, names...)
}
