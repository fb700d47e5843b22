package typesync

import "context"

// LocalChecker reports whether an installed package carries its own declarations.
type LocalChecker interface {
	HasLocalTypes(ctx context.Context, name ModuleName) (bool, error)
}

// RemoteChecker reports whether the companion declaration package of name exists.
type RemoteChecker interface {
	HasTypes(ctx context.Context, name ModuleName) (bool, error)
}

// Classifier decides the ModuleType of a package.
type Classifier struct {
	local  LocalChecker
	remote RemoteChecker
}

// NewClassifier creates a classifier backed by the given checks.
func NewClassifier(local LocalChecker, remote RemoteChecker) *Classifier {
	return &Classifier{local: local, remote: remote}
}

// Classify checks local declarations first and only asks the registry
// when none are found. Each call performs at most one check of each kind.
func (c *Classifier) Classify(ctx context.Context, name ModuleName) (ModuleInfo, error) {
	hasLocal, err := c.local.HasLocalTypes(ctx, name)
	if err != nil {
		return ModuleInfo{}, LocalCheckError(name, err)
	}
	if hasLocal {
		return NewModuleInfo(name, HasLocalTypes), nil
	}

	hasRemote, err := c.remote.HasTypes(ctx, name)
	if err != nil {
		return ModuleInfo{}, RemoteCheckError(name, err)
	}
	if hasRemote {
		return NewModuleInfo(name, HasRemoteTypes), nil
	}
	return NewModuleInfo(name, NoTypes), nil
}
