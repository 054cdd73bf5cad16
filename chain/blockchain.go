package chain

import (
	"github.com/helium/helium-tools-api/chain/solana"
)

var _ BlockChain = solana.Chain{}

// BlockChain is an interface that represents a chain the service reads state from.
type BlockChain interface {
	// String returns chain name and selector "<name> (<selector>)"
	String() string
	// Name returns the name of the chain
	Name() string
	ChainSelector() uint64
	Family() string
}
