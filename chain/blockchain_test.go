package chain_test

import (
	"testing"

	chain_selectors "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"

	"github.com/helium/helium-tools-api/chain"
	"github.com/helium/helium-tools-api/chain/solana"
)

func TestBlockChain_Solana(t *testing.T) {
	t.Parallel()

	var bc chain.BlockChain = solana.Chain{Selector: chain_selectors.SOLANA_DEVNET.Selector}

	assert.Equal(t, chain_selectors.SOLANA_DEVNET.Selector, bc.ChainSelector())
	assert.Equal(t, chain_selectors.SOLANA_DEVNET.Name, bc.Name())
	assert.Equal(t, chain.FamilySolana, bc.Family())
}

func TestFamilies(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"helium", "solana"}, chain.Families())

	tests := []struct {
		give string
		want bool
	}{
		{give: "helium", want: true},
		{give: "solana", want: true},
		{give: "evm", want: false},
		{give: "Helium", want: false},
		{give: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, chain.IsFamily(tt.give))
		})
	}
}
