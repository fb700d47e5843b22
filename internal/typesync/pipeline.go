package typesync

import "context"

// Step labels shown while narrating a run.
const (
	installingLabel      = "Installing Packages"
	fetchingInfosLabel   = "Getting Modules Infos"
	installingTypesLabel = "Installing Available Types"
)

// Options controls how packages are saved and which package manager runs.
type Options struct {
	// Dev saves the requested packages as development dependencies.
	Dev bool
	// Prod saves the companion @types packages as production dependencies.
	Prod bool
	// Yarn installs with yarn instead of npm.
	Yarn bool
}

// Program installs packages and their companion declarations.
type Program struct {
	app App
}

// NewProgram creates a Program running against app.
func NewProgram(app App) *Program {
	return &Program{app: app}
}

// Run installs names, classifies each one, installs the available companion
// packages and prints a summary. The first failure stops the run and is
// reported through Fail exactly once before being returned.
func (p *Program) Run(ctx context.Context, names []ModuleName, opts Options, verbose bool) error {
	if err := p.run(ctx, names, opts, verbose); err != nil {
		p.app.Fail(err.Error())
		return err
	}
	return nil
}

func (p *Program) run(ctx context.Context, names []ModuleName, opts Options, verbose bool) error {
	if len(names) == 0 {
		return nil
	}

	step := func(label string, action func() error) error {
		if !verbose {
			return action()
		}
		p.app.Start(label)
		if err := action(); err != nil {
			return err
		}
		p.app.Succeed()
		return nil
	}

	if err := step(installingLabel, func() error {
		return p.app.Install(ctx, names, opts.Dev, opts.Yarn)
	}); err != nil {
		return err
	}

	var infos []ModuleInfo
	if err := step(fetchingInfosLabel, func() error {
		var err error
		infos, err = p.fetchInfos(ctx, names)
		return err
	}); err != nil {
		return err
	}

	remoteTypes := filterNames(infos, ModuleInfo.HasRemoteTypes)
	noTypes := filterNames(infos, ModuleInfo.HasNoTypes)

	if len(remoteTypes) > 0 {
		if err := step(installingTypesLabel, func() error {
			return p.app.Install(ctx, companionNames(remoteTypes), !opts.Prod, opts.Yarn)
		}); err != nil {
			return err
		}
	}

	p.showResults(remoteTypes, noTypes)
	return nil
}

// fetchInfos classifies names one at a time, in order.
func (p *Program) fetchInfos(ctx context.Context, names []ModuleName) ([]ModuleInfo, error) {
	infos := make([]ModuleInfo, 0, len(names))
	for _, name := range names {
		info, err := p.app.FetchInfo(ctx, name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (p *Program) showResults(remoteTypes, noTypes []ModuleName) {
	if len(remoteTypes) > 0 {
		p.app.Print(FormatMessage(fullyInstalledHeading, remoteTypes))
	}
	if len(noTypes) > 0 {
		p.app.Print(FormatMessage(lackTypesHeading, noTypes))
	}
}

func filterNames(infos []ModuleInfo, keep func(ModuleInfo) bool) []ModuleName {
	var out []ModuleName
	for _, info := range infos {
		if keep(info) {
			out = append(out, info.Name())
		}
	}
	return out
}
