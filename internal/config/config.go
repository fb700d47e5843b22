package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/getlawrence/typed-install/internal/registry"
	"github.com/getlawrence/typed-install/internal/typesync"
)

// FileName is the config file looked up in the home and project directories.
const FileName = ".typed-install.yaml"

// Environment variables overriding config files.
const (
	EnvRegistry = "TYPED_INSTALL_REGISTRY"
	EnvTimeout  = "TYPED_INSTALL_TIMEOUT"
	EnvYarn     = "TYPED_INSTALL_YARN"
)

// Config represents the typed-install configuration
type Config struct {
	// Directory holding package.json and node_modules
	ProjectDir string `yaml:"project_dir"`

	// npm registry used to look up @types packages
	Registry string `yaml:"registry"`

	// Timeout of a single registry request
	Timeout time.Duration `yaml:"timeout"`

	// Install with yarn instead of npm
	Yarn bool `yaml:"yarn"`

	// Save requested packages into devDependencies
	Dev bool `yaml:"dev"`

	// Save @types packages into dependencies
	Prod bool `yaml:"prod"`

	// Disable step narration
	Quiet bool `yaml:"quiet"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ProjectDir: ".",
		Registry:   registry.NPMRegistryBaseURL,
		Timeout:    registry.DefaultTimeout,
	}
}

// Options returns the run options of the install pipeline.
func (c *Config) Options() typesync.Options {
	return typesync.Options{Dev: c.Dev, Prod: c.Prod, Yarn: c.Yarn}
}

// LoadConfig builds the configuration for projectDir. When configPath is
// empty, ~/.typed-install.yaml and <projectDir>/.typed-install.yaml are
// merged in that order; otherwise only configPath is read and must exist.
// Environment variables, then <projectDir>/.env, override the files.
func LoadConfig(configPath, projectDir string) (*Config, error) {
	config := DefaultConfig()
	if projectDir != "" {
		config.ProjectDir = projectDir
	}

	if configPath != "" {
		if err := mergeFile(config, configPath); err != nil {
			return nil, err
		}
	} else {
		for _, path := range findConfigFiles(config.ProjectDir) {
			if err := mergeFile(config, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}
	if projectDir != "" {
		config.ProjectDir = projectDir
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

func findConfigFiles(projectDir string) []string {
	var paths []string
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, filepath.Join(home, FileName))
	}
	return append(paths, filepath.Join(projectDir, FileName))
}

func mergeFile(config *Config, path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(config *Config) error {
	dotenv, err := godotenv.Read(filepath.Join(config.ProjectDir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env: %w", err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v), true
		}
		v, ok := dotenv[key]
		return strings.TrimSpace(v), ok
	}

	if v, ok := lookup(EnvRegistry); ok && v != "" {
		config.Registry = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		config.Timeout = d
	}
	if v, ok := lookup(EnvYarn); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvYarn, err)
		}
		config.Yarn = b
	}
	return nil
}
