package internal_test

import (
	"testing"

	chain_selectors "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helium/helium-tools-api/chain/internal"
)

func TestChainBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		selector   uint64
		wantName   string
		wantString string
		wantFamily string
	}{
		{
			name:       "solana mainnet",
			selector:   chain_selectors.SOLANA_MAINNET.Selector,
			wantString: "solana-mainnet (124615329519749607)",
			wantName:   chain_selectors.SOLANA_MAINNET.Name,
			wantFamily: chain_selectors.FamilySolana,
		},
		{
			name:       "unknown selector",
			selector:   0,
			wantString: "",
			wantName:   "",
			wantFamily: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := internal.ChainBase{Selector: tt.selector}
			assert.Equal(t, tt.selector, base.ChainSelector())
			assert.Equal(t, tt.wantString, base.String())
			assert.Equal(t, tt.wantName, base.Name())
			assert.Equal(t, tt.wantFamily, base.Family())
		})
	}
}

func TestChainInfo(t *testing.T) {
	t.Parallel()

	info, err := internal.ChainInfo(chain_selectors.SOLANA_DEVNET.Selector)
	require.NoError(t, err)
	assert.Equal(t, chain_selectors.SOLANA_DEVNET.Name, info.ChainName)
	assert.Equal(t, chain_selectors.SOLANA_DEVNET.Selector, info.ChainSelector)

	_, err = internal.ChainInfo(0)
	require.ErrorContains(t, err, "unknown chain selector 0")
}
