package chain

import (
	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

const (
	// FamilyHelium identifies the Helium L1 address format: a base58check envelope carrying a
	// version byte, a key type byte and the public key.
	FamilyHelium = "helium"
	// FamilySolana identifies the Solana address format: the base58 encoded public key.
	FamilySolana = chain_selectors.FamilySolana
)

// Families returns the address families understood by this module.
func Families() []string {
	return []string{FamilyHelium, FamilySolana}
}

// IsFamily reports whether family is one of the supported address families.
func IsFamily(family string) bool {
	return family == FamilyHelium || family == FamilySolana
}
