package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "typed-install [options] <modules ...>",
	Short: "Install npm packages together with their type declarations",
	Long: `typed-install installs the given packages with npm (or yarn), then checks
each one for TypeScript declarations.

Packages that ship their own declarations are left alone. When a package has
no bundled declarations but a companion @types package exists in the registry,
the companion is installed as well. A summary lists the packages that ended up
fully typed and the ones that have no types at all.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInstall,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ReportedError is a pipeline failure that was already shown to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

func init() {
	// Every positional argument is a package name, including "help" and
	// "completion", so the root command keeps no subcommands.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Use: "__help", Hidden: true, Run: func(*cobra.Command, []string) {}})

	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.typed-install.yaml and ./.typed-install.yaml)")
	rootCmd.PersistentFlags().StringP("cwd", "C", "", "project directory containing package.json")
}
