package cmd

import (
	"github.com/spf13/cobra"

	"github.com/getlawrence/typed-install/internal/commander"
	"github.com/getlawrence/typed-install/internal/installer"
	"github.com/getlawrence/typed-install/internal/logger"
	"github.com/getlawrence/typed-install/internal/manifest"
	"github.com/getlawrence/typed-install/internal/registry"
	"github.com/getlawrence/typed-install/internal/typesync"
)

func init() {
	addInstallFlags(rootCmd)
}

func addInstallFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolP("dev", "d", false, "save everything into the dev dependencies")
	flags.BoolP("prod", "p", false, "save the @types into `dependencies`")
	flags.BoolP("yarn", "y", false, "install using yarn instead of npm")
	flags.BoolP("quiet", "q", false, "do not narrate each step")
	flags.String("registry", "", "npm registry used to look up @types packages")
}

// newProgram wires the real collaborators into a pipeline.
func newProgram(app *AppConfig, cmdr commander.Commander, progress logger.Progress) *typesync.Program {
	cfg := app.Config
	classifier := typesync.NewClassifier(
		manifest.NewInspector(cfg.ProjectDir, app.Logger),
		registry.NewClientWithBaseURL(cfg.Registry, cfg.Timeout),
	)
	packages := typesync.NewPackageOps(installer.New(cmdr, cfg.ProjectDir), classifier)
	return typesync.NewProgram(typesync.NewApp(progress, packages))
}

func runInstall(cmd *cobra.Command, args []string) error {
	app, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}

	program := newProgram(app, commander.NewReal("npm_config_update_notifier=false"), logger.NewProgress(cmd.OutOrStdout()))
	if err := program.Run(cmd.Context(), uniqueNames(args), app.Config.Options(), !app.Config.Quiet); err != nil {
		return &ReportedError{Err: err}
	}
	return nil
}

// uniqueNames drops repeated package names, keeping the first occurrence.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
