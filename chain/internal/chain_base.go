package internal

import (
	"fmt"
	"strconv"

	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

// ChainBase resolves naming details for a chain selector. Chain structs
// delegate their BlockChain identity methods to it.
type ChainBase struct {
	Selector uint64
}

func (c ChainBase) ChainSelector() uint64 {
	return c.Selector
}

// String returns "<name> (<selector>)", or an empty string for an unknown selector.
func (c ChainBase) String() string {
	info, err := ChainInfo(c.Selector)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%s (%d)", info.ChainName, info.ChainSelector)
}

// Name falls back to the decimal selector when the registry has no name for it.
func (c ChainBase) Name() string {
	info, err := ChainInfo(c.Selector)
	if err != nil {
		return ""
	}
	if info.ChainName == "" {
		return strconv.FormatUint(c.Selector, 10)
	}

	return info.ChainName
}

// Family returns the selector's family, or an empty string when it is unknown.
func (c ChainBase) Family() string {
	family, err := chain_selectors.GetSelectorFamily(c.Selector)
	if err != nil {
		return ""
	}

	return family
}

// ChainInfo looks up the chain details registered for a selector.
func ChainInfo(selector uint64) (chain_selectors.ChainDetails, error) {
	id, err := chain_selectors.GetChainIDFromSelector(selector)
	if err != nil {
		return chain_selectors.ChainDetails{}, err
	}
	family, err := chain_selectors.GetSelectorFamily(selector)
	if err != nil {
		return chain_selectors.ChainDetails{}, err
	}

	return chain_selectors.GetChainDetailsByChainIDAndFamily(id, family)
}
