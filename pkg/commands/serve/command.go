package serve

import (
	"context"
	"errors"
	"fmt"

	chain_selectors "github.com/smartcontractkit/chain-selectors"
	"github.com/spf13/cobra"

	"github.com/helium/helium-tools-api/api"
	"github.com/helium/helium-tools-api/chain/solana"
	"github.com/helium/helium-tools-api/chain/utils/addrconv"
	"github.com/helium/helium-tools-api/supply"
)

// SolanaSelector identifies the cluster that token mints are read from.
var SolanaSelector = chain_selectors.SOLANA_MAINNET.Selector

// Config holds the configuration for the serve command.
type Config struct {
	// Deps overrides production dependencies. Optional.
	Deps *Deps
}

func (c *Config) deps() {
	if c.Deps == nil {
		c.Deps = &Deps{}
	}
	c.Deps.applyDefaults()
}

// NewCommand creates the serve command.
//
// Usage:
//
//	rootCmd.AddCommand(serve.NewCommand(serve.Config{}))
func NewCommand(cfg Config) *cobra.Command {
	cfg.deps()

	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until interrupted.

Configuration is read from the optional config file and the environment. PORT, SOLANA_RPC and
RUST_LOG are still honoured for existing deployments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg.Deps, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "Path to an optional yaml or toml config file")

	return cmd
}

func run(ctx context.Context, deps *Deps, configPath string) error {
	cfg, err := deps.ConfigLoader(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	lggr, err := deps.LoggerFactory(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	bc, err := deps.ChainProvider(cfg.Solana).Initialize(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize solana chain: %w", err)
	}
	solChain, ok := bc.(solana.Chain)
	if !ok {
		return fmt.Errorf("expected a solana chain, got %T", bc)
	}
	lggr.Infow("Solana chain initialized", "chain", solChain.String(), "url", solChain.URL)

	var transcoderOpts []addrconv.Option
	if cfg.Address.StrictKeyValidation {
		transcoderOpts = append(transcoderOpts, addrconv.WithStrictKeyValidation())
	}

	var serverOpts []api.Option
	if cfg.Metrics.Enabled {
		reg, rerr := api.NewRegistry()
		if rerr != nil {
			return fmt.Errorf("failed to create metrics registry: %w", rerr)
		}
		serverOpts = append(serverOpts, api.WithMetrics(reg))
	}

	srv, err := api.NewServer(
		cfg.Server,
		addrconv.NewTranscoder(transcoderOpts...),
		supply.NewService(solChain, lggr),
		supply.DefaultTokens(),
		lggr,
		serverOpts...,
	)
	if err != nil {
		return err
	}

	if err = deps.Runner(ctx, srv); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
