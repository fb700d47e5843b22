package typesync

import "context"

// Logger narrates progress. A single indication is active at a time.
type Logger interface {
	Start(message string)
	Succeed()
	Print(message string)
	Fail(message string)
}

// Packages performs package operations.
type Packages interface {
	Install(ctx context.Context, names []ModuleName, dev, yarn bool) error
	FetchInfo(ctx context.Context, name ModuleName) (ModuleInfo, error)
}

// App is the full capability set a Program runs against.
type App interface {
	Logger
	Packages
}

type app struct {
	Logger
	Packages
}

// NewApp composes independent logger and package capabilities.
func NewApp(l Logger, p Packages) App {
	return app{Logger: l, Packages: p}
}

// Installer batch-installs packages through a package manager.
type Installer interface {
	Install(ctx context.Context, names []string, dev, yarn bool) error
}

// PackageOps is the I/O-backed Packages capability.
type PackageOps struct {
	installer  Installer
	classifier *Classifier
}

// NewPackageOps creates the Packages capability from an installer and a classifier.
func NewPackageOps(installer Installer, classifier *Classifier) *PackageOps {
	return &PackageOps{installer: installer, classifier: classifier}
}

func (p *PackageOps) Install(ctx context.Context, names []ModuleName, dev, yarn bool) error {
	if err := p.installer.Install(ctx, names, dev, yarn); err != nil {
		return InstallError(names, err)
	}
	return nil
}

func (p *PackageOps) FetchInfo(ctx context.Context, name ModuleName) (ModuleInfo, error) {
	return p.classifier.Classify(ctx, name)
}
