// Package configcmd provides the CLI command that prints the effective configuration.
package configcmd

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/helium/helium-tools-api/config"
)

const (
	formatYAML = "yaml"
	formatTOML = "toml"

	sourceMerged = "merged"
	sourceEnv    = "env"
	sourceFile   = "file"
)

// ConfigLoaderFunc loads the service configuration from an optional file path.
type ConfigLoaderFunc func(path string) (*config.Config, error)

// EnvLoaderFunc loads the service configuration from defaults and the environment.
type EnvLoaderFunc func() (*config.Config, error)

// Config holds the configuration for the config command.
type Config struct {
	// ConfigLoader overrides config.Load. Optional.
	ConfigLoader ConfigLoaderFunc
	// FileLoader overrides config.LoadFile. Optional.
	FileLoader ConfigLoaderFunc
	// EnvLoader overrides config.LoadEnv. Optional.
	EnvLoader EnvLoaderFunc
}

func (c *Config) applyDefaults() {
	if c.ConfigLoader == nil {
		c.ConfigLoader = config.Load
	}
	if c.FileLoader == nil {
		c.FileLoader = config.LoadFile
	}
	if c.EnvLoader == nil {
		c.EnvLoader = config.LoadEnv
	}
}

// load reads the configuration from the named source.
func (c *Config) load(source, path string) (*config.Config, error) {
	switch source {
	case sourceMerged:
		return c.ConfigLoader(path)
	case sourceFile:
		return c.FileLoader(path)
	case sourceEnv:
		return c.EnvLoader()
	default:
		return nil, fmt.Errorf("unsupported source %q, expected %s, %s or %s", source, sourceMerged, sourceFile, sourceEnv)
	}
}

// NewCommand creates the config command group.
func NewCommand(cfg Config) *cobra.Command {
	cfg.applyDefaults()

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}
	cmd.AddCommand(newPrintCmd(&cfg))

	return cmd
}

func newPrintCmd(cfg *Config) *cobra.Command {
	var (
		configPath string
		format     string
		source     string
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration",
		Long: `Print the configuration the serve command would run with, after applying defaults,
the optional config file and environment overrides.

--source file prints defaults plus the config file only, and fails if the file is missing.
--source env prints defaults plus environment variables only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := cfg.load(source, configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			return write(cmd.OutOrStdout(), loaded, format)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "Path to an optional yaml or toml config file")
	cmd.Flags().StringVar(&format, "format", formatYAML, "Output format (yaml|toml)")
	cmd.Flags().StringVar(&source, "source", sourceMerged, "Configuration source (merged|file|env)")

	return cmd
}

func write(w io.Writer, cfg *config.Config, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	case formatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unsupported format %q, expected %s or %s", format, formatYAML, formatTOML)
	}
}
