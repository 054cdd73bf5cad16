// Package serve provides the CLI command that runs the HTTP API.
package serve

import (
	"context"

	"github.com/helium/helium-tools-api/api"
	"github.com/helium/helium-tools-api/chain"
	"github.com/helium/helium-tools-api/chain/solana/provider"
	"github.com/helium/helium-tools-api/config"
	"github.com/helium/helium-tools-api/pkg/logger"
)

// ConfigLoaderFunc loads the service configuration from an optional file path.
type ConfigLoaderFunc func(path string) (*config.Config, error)

// LoggerFactoryFunc builds the runtime logger from configuration.
type LoggerFactoryFunc func(cfg config.LogConfig) (logger.Logger, error)

// ChainProviderFunc builds the provider for the Solana chain that supply is read from.
type ChainProviderFunc func(cfg config.SolanaConfig) chain.Provider

// RunnerFunc serves the API until ctx is done.
type RunnerFunc func(ctx context.Context, srv *api.Server) error

func defaultLoggerFactory(cfg config.LogConfig) (logger.Logger, error) {
	return logger.Config{Level: cfg.Level, Development: cfg.Development}.New()
}

func defaultChainProvider(cfg config.SolanaConfig) chain.Provider {
	return provider.NewRPCChainProvider(SolanaSelector, provider.RPCChainProviderConfig{
		HTTPURL:       cfg.RPCURL,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
	})
}

func defaultRunner(ctx context.Context, srv *api.Server) error {
	return srv.Run(ctx)
}

// Deps holds the injectable dependencies for the serve command.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// LoggerFactory builds the logger.
	// Default: logger.Config.New
	LoggerFactory LoggerFactoryFunc

	// ChainProvider builds the Solana chain provider.
	// Default: provider.NewRPCChainProvider
	ChainProvider ChainProviderFunc

	// Runner serves the API.
	// Default: (*api.Server).Run
	Runner RunnerFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.LoggerFactory == nil {
		d.LoggerFactory = defaultLoggerFactory
	}
	if d.ChainProvider == nil {
		d.ChainProvider = defaultChainProvider
	}
	if d.Runner == nil {
		d.Runner = defaultRunner
	}
}
