package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	solrpc "github.com/gagliardetto/solana-go/rpc"
	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/helium/helium-tools-api/chain"
	"github.com/helium/helium-tools-api/chain/solana"
	"github.com/helium/helium-tools-api/chain/solana/provider/rpcclient"
)

// RPCChainProviderConfig holds the configuration to initialize the RPCChainProvider.
type RPCChainProviderConfig struct {
	// Required: The HTTP RPC URL to connect to the Solana node
	HTTPURL string
	// Optional: How many times an account read is attempted. Zero keeps retrying until the
	// request context is done.
	RetryAttempts uint
	// Optional: The delay between account read attempts.
	RetryDelay time.Duration
	// Optional: The commitment level accounts are read at. Defaults to confirmed.
	Commitment solrpc.CommitmentType
}

// validate checks if the RPCChainProviderConfig is valid.
func (c RPCChainProviderConfig) validate() error {
	if c.HTTPURL == "" {
		return errors.New("http url is required")
	}

	u, err := url.Parse(c.HTTPURL)
	if err != nil {
		return fmt.Errorf("invalid http url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("http url must use http or https scheme: %s", c.HTTPURL)
	}
	if u.Host == "" {
		return fmt.Errorf("http url has no host: %s", c.HTTPURL)
	}

	return nil
}

// clientOpts maps the optional fields onto rpcclient options.
func (c RPCChainProviderConfig) clientOpts() []rpcclient.Opt {
	var opts []rpcclient.Opt
	if c.RetryAttempts > 0 || c.RetryDelay > 0 {
		opts = append(opts, rpcclient.WithRetry(c.RetryAttempts, c.RetryDelay))
	}
	if c.Commitment != "" {
		opts = append(opts, rpcclient.WithCommitment(c.Commitment))
	}

	return opts
}

var _ chain.Provider = (*RPCChainProvider)(nil)

// RPCChainProvider is a chain provider that provides a chain that connects to a Solana node via
// RPC.
type RPCChainProvider struct {
	// Solana chain selector, used to identify the chain.
	selector uint64

	config RPCChainProviderConfig

	// chain is set up by Initialize.
	chain *solana.Chain
}

func NewRPCChainProvider(selector uint64, config RPCChainProviderConfig) *RPCChainProvider {
	return &RPCChainProvider{
		selector: selector,
		config:   config,
	}
}

// Initialize validates the configuration and sets up the Solana client with the provided HTTP RPC
// URL. No request is made to the node; the first read happens on demand.
func (p *RPCChainProvider) Initialize(_ context.Context) (chain.BlockChain, error) {
	if p.chain != nil {
		return *p.chain, nil // Already initialized
	}

	if err := p.config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate provider config: %w", err)
	}

	family, err := chain_selectors.GetSelectorFamily(p.selector)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chain selector %d: %w", p.selector, err)
	}
	if family != chain_selectors.FamilySolana {
		return nil, fmt.Errorf("chain selector %d belongs to family %s, expected %s",
			p.selector, family, chain_selectors.FamilySolana)
	}

	client := rpcclient.New(solrpc.New(p.config.HTTPURL), p.config.clientOpts()...)

	p.chain = &solana.Chain{
		Selector: p.selector,
		Client:   client,
		URL:      p.config.HTTPURL,
	}

	return *p.chain, nil
}

// Name returns the name of the RPCChainProvider.
func (*RPCChainProvider) Name() string {
	return "Solana RPC Chain Provider"
}

// ChainSelector returns the chain selector of the Solana chain managed by this provider.
func (p *RPCChainProvider) ChainSelector() uint64 {
	return p.selector
}

// BlockChain returns the Solana chain instance managed by this provider. You must call Initialize
// before using this method to ensure the chain is properly set up.
func (p *RPCChainProvider) BlockChain() chain.BlockChain {
	if p.chain == nil {
		return nil
	}

	return *p.chain
}
