package solana_test

import (
	"testing"

	sollib "github.com/gagliardetto/solana-go"
	chain_selectors "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/helium/helium-tools-api/chain/solana"
	"github.com/helium/helium-tools-api/chain/solana/provider/rpcclient"
	"github.com/helium/helium-tools-api/internal/testing/solana/mocks"
)

func TestChain_ChainInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		selector   uint64
		wantName   string
		wantString string
	}{
		{
			name:       "returns correct info",
			selector:   chain_selectors.SOLANA_MAINNET.Selector,
			wantString: "solana-mainnet (124615329519749607)",
			wantName:   chain_selectors.SOLANA_MAINNET.Name,
		},
		{
			name:       "returns empty for unknown chain",
			selector:   0,
			wantString: "",
			wantName:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := solana.Chain{
				Selector: tt.selector,
			}
			assert.Equal(t, tt.selector, c.ChainSelector())
			assert.Equal(t, tt.wantString, c.String())
			assert.Equal(t, tt.wantName, c.Name())
			assert.Equal(t, chain_selectors.FamilySolana, c.Family())
		})
	}
}

func TestChain_GetMint(t *testing.T) {
	t.Parallel()

	mint := sollib.MustPublicKeyFromBase58("hntyVP6YFm1Hg25TN9WGLqM12b8TQmcknKrdu1oxWux")

	t.Run("reads through the rpc client", func(t *testing.T) {
		t.Parallel()

		getter := mocks.NewMockAccountInfoGetter(t)
		getter.EXPECT().
			GetAccountInfoWithOpts(mock.Anything, mint, mock.Anything).
			Return(mocks.MintAccount(15_000_000_000_000, 8), nil).
			Once()

		c := solana.Chain{
			Selector: chain_selectors.SOLANA_MAINNET.Selector,
			Client:   rpcclient.New(getter),
		}

		got, err := c.GetMint(t.Context(), mint)
		require.NoError(t, err)
		assert.Equal(t, uint64(15_000_000_000_000), got.Supply)
		assert.Equal(t, uint8(8), got.Decimals)
	})

	t.Run("fails without a client", func(t *testing.T) {
		t.Parallel()

		_, err := solana.Chain{}.GetMint(t.Context(), mint)
		require.ErrorIs(t, err, solana.ErrClientNotInitialized)
	})
}
