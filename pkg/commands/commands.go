// Package commands provides the CLI command packages for the helium tools binary.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	cmds := commands.New()
//	rootCmd.AddCommand(
//	    cmds.Serve(),
//	    cmds.Address(),
//	    cmds.Config(),
//	)
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/helium/helium-tools-api/pkg/commands/serve"
//
//	rootCmd.AddCommand(serve.NewCommand(serve.Config{
//	    Deps: &serve.Deps{...}, // inject fakes for testing
//	}))
package commands

import (
	"github.com/spf13/cobra"

	"github.com/helium/helium-tools-api/pkg/commands/address"
	"github.com/helium/helium-tools-api/pkg/commands/configcmd"
	"github.com/helium/helium-tools-api/pkg/commands/serve"
)

// Commands provides a factory for creating CLI commands with shared configuration.
type Commands struct {
	configLoader serve.ConfigLoaderFunc
}

// New creates a new Commands factory.
func New(opts ...Option) *Commands {
	c := &Commands{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Option configures the Commands factory.
type Option func(*Commands)

// WithConfigLoader replaces config.Load for every command that reads configuration.
func WithConfigLoader(fn serve.ConfigLoaderFunc) Option {
	return func(c *Commands) {
		c.configLoader = fn
	}
}

// Serve creates the command that runs the HTTP API.
func (c *Commands) Serve() *cobra.Command {
	return serve.NewCommand(serve.Config{
		Deps: &serve.Deps{ConfigLoader: c.configLoader},
	})
}

// Address creates the address command group for offline conversions.
func (c *Commands) Address() *cobra.Command {
	return address.NewCommand()
}

// Config creates the config command group.
func (c *Commands) Config() *cobra.Command {
	return configcmd.NewCommand(configcmd.Config{
		ConfigLoader: configcmd.ConfigLoaderFunc(c.configLoader),
	})
}
