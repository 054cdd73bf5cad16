package solana

import (
	"context"
	"errors"

	sollib "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/helium/helium-tools-api/chain/internal"
	"github.com/helium/helium-tools-api/chain/solana/provider/rpcclient"
)

// ErrClientNotInitialized is returned when a read is attempted on a Chain without an RPC client.
var ErrClientNotInitialized = errors.New("solana rpc client is not initialized")

// Chain represents a Solana cluster reachable over JSON RPC.
type Chain struct {
	Selector uint64

	// RPC client
	Client *rpcclient.Client
	URL    string
}

// GetMint reads the SPL token mint account at the given address.
func (c Chain) GetMint(ctx context.Context, mint sollib.PublicKey) (*token.Mint, error) {
	if c.Client == nil {
		return nil, ErrClientNotInitialized
	}

	return c.Client.GetMint(ctx, mint)
}

// ChainSelector returns the chain selector of the chain
func (c Chain) ChainSelector() uint64 {
	return c.Selector
}

// String returns chain name and selector "<name> (<selector>)"
func (c Chain) String() string {
	return internal.ChainBase{Selector: c.Selector}.String()
}

// Name returns the name of the chain
func (c Chain) Name() string {
	return internal.ChainBase{Selector: c.Selector}.Name()
}

// Family returns the family of the chain
func (c Chain) Family() string {
	return chain_selectors.FamilySolana
}
