package cmd

import (
	"github.com/spf13/cobra"

	"github.com/getlawrence/typed-install/internal/config"
	"github.com/getlawrence/typed-install/internal/logger"
)

// AppConfig holds all the shared configuration and dependencies
type AppConfig struct {
	Config *config.Config
	Logger logger.Logger
}

// NewAppConfig creates a new configuration instance
func NewAppConfig(cfg *config.Config, logger logger.Logger) *AppConfig {
	return &AppConfig{
		Config: cfg,
		Logger: logger,
	}
}

// loadAppConfig reads config files and environment, then applies the flags
// the user set explicitly.
func loadAppConfig(cmd *cobra.Command) (*AppConfig, error) {
	configPath, _ := cmd.Flags().GetString("config")
	projectDir, _ := cmd.Flags().GetString("cwd")

	cfg, err := config.LoadConfig(configPath, projectDir)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)

	return NewAppConfig(cfg, logger.NewWriterLogger(cmd.ErrOrStderr())), nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	boolFlag := func(name string, dst *bool) {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}
	boolFlag("dev", &cfg.Dev)
	boolFlag("prod", &cfg.Prod)
	boolFlag("yarn", &cfg.Yarn)
	boolFlag("quiet", &cfg.Quiet)
	if flags.Changed("registry") {
		cfg.Registry, _ = flags.GetString("registry")
	}
}
