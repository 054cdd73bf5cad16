package addrconv_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helium/helium-tools-api/chain"
	"github.com/helium/helium-tools-api/chain/common"
	"github.com/helium/helium-tools-api/chain/utils/addrconv"
)

const (
	zeroHelium = "12wkBET2rRgE8pahuaczxKbmv7ciehqsne57F9gtzf1PVja1RXu"
	zeroSolana = "11111111111111111111111111111111"

	tokenProgramHelium = "12zmaz84LWb5zTUkWSCRGMXRRPUypisLygqcUWQgkfES4xUPB7M"
	tokenProgramSolana = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

	onesHelium = "12xBpaHottqhwFZURMZW4uZduQvpxNDSy46iXMYs9kceNKYY1ny"
	onesSolana = "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"

	// key {0x02, 0x00, ...} does not decode to a curve point
	offCurveHelium = "12xdGJBNoe716cifxi8jYjm7JHBd5vPyd2ZgpnutwwATJ9Y2nBQ"
	offCurveSolana = "8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh"
)

func TestTranscoder_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		address   string
		target    string
		want      string
		wantErrIs error
	}{
		{
			name:    "zero key Helium to Solana",
			address: zeroHelium,
			target:  chain.FamilySolana,
			want:    zeroSolana,
		},
		{
			name:    "zero key Solana to Helium",
			address: zeroSolana,
			target:  chain.FamilyHelium,
			want:    zeroHelium,
		},
		{
			name:    "token program Solana to Helium",
			address: tokenProgramSolana,
			target:  chain.FamilyHelium,
			want:    tokenProgramHelium,
		},
		{
			name:    "token program Helium to Solana",
			address: tokenProgramHelium,
			target:  chain.FamilySolana,
			want:    tokenProgramSolana,
		},
		{
			name:    "ones key Helium to Solana",
			address: onesHelium,
			target:  chain.FamilySolana,
			want:    onesSolana,
		},
		{
			name:    "off curve key is accepted by default",
			address: offCurveSolana,
			target:  chain.FamilyHelium,
			want:    offCurveHelium,
		},
		{
			name:      "address already in target family",
			address:   zeroHelium,
			target:    chain.FamilyHelium,
			wantErrIs: common.ErrMalformedAddress,
		},
		{
			name:      "Solana address with Solana target",
			address:   tokenProgramSolana,
			target:    chain.FamilySolana,
			wantErrIs: common.ErrMalformedAddress,
		},
		{
			name:      "invalid character for Solana target",
			address:   "12wkBET2rRgE8pahuaczxKbmv7ciehqsne57F9gtzf1PVja1RX0",
			target:    chain.FamilySolana,
			wantErrIs: common.ErrMalformedAddress,
		},
		{
			name:      "invalid character for Helium target",
			address:   "1111111111111111111111111111111O",
			target:    chain.FamilyHelium,
			wantErrIs: common.ErrMalformedAddress,
		},
		{
			name:      "corrupted checksum",
			address:   "12wkBET2rRgE8pahuaczxKbmv7ciehqsne57F9gtzf1PVja1RXv",
			target:    chain.FamilySolana,
			wantErrIs: common.ErrChecksumInvalid,
		},
		{
			name:      "non ed25519 key type",
			address:   "14tVMTu4hrMTGeAQpAEzueCYqEESJQgkaH9DVJNnzK1mzL2svGn",
			target:    chain.FamilySolana,
			wantErrIs: common.ErrUnsupportedKeyType,
		},
		{
			name:      "testnet key type",
			address:   "1a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPg6vAV5",
			target:    chain.FamilySolana,
			wantErrIs: common.ErrUnsupportedKeyType,
		},
		{
			name:      "31 byte Solana key",
			address:   "5SV2hdVK1ZezefdyJMyk8fvkE9qZvZshnqmvg28eJp",
			target:    chain.FamilyHelium,
			wantErrIs: common.ErrMalformedAddress,
		},
		{
			name:      "33 byte Solana key",
			address:   "2VVBLCT63vjAyYsAdKNX5RUsRUGGd6MnaDJ6ubWMqKRqv",
			target:    chain.FamilyHelium,
			wantErrIs: common.ErrMalformedAddress,
		},
		{
			name:      "empty address",
			address:   "",
			target:    chain.FamilySolana,
			wantErrIs: common.ErrMalformedAddress,
		},
		{
			name:      "unknown target",
			address:   zeroHelium,
			target:    "evm",
			wantErrIs: addrconv.ErrUnsupportedFamily,
		},
		{
			name:      "empty target",
			address:   zeroHelium,
			target:    "",
			wantErrIs: addrconv.ErrUnsupportedFamily,
		},
	}

	transcoder := addrconv.NewTranscoder()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := transcoder.Convert(tt.address, tt.target)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.Empty(t, got)

				gotMaybe, ok := transcoder.MaybeConvert(tt.address, tt.target)
				assert.False(t, ok)
				assert.Empty(t, gotMaybe)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			gotMaybe, ok := transcoder.MaybeConvert(tt.address, tt.target)
			assert.True(t, ok)
			assert.Equal(t, tt.want, gotMaybe)
		})
	}
}

func TestTranscoder_CrossRoundTrip(t *testing.T) {
	t.Parallel()

	transcoder := addrconv.NewTranscoder()

	for i := range 64 {
		raw := make([]byte, 32)
		for j := range raw {
			raw[j] = byte(i*31 + j*7)
		}

		hnt, err := addrconv.FromBytes(chain.FamilyHelium, raw)
		require.NoError(t, err)
		sol, err := addrconv.FromBytes(chain.FamilySolana, raw)
		require.NoError(t, err)

		gotSol, err := transcoder.Convert(hnt, chain.FamilySolana)
		require.NoError(t, err)
		assert.Equal(t, sol, gotSol)

		gotHnt, err := transcoder.Convert(gotSol, chain.FamilyHelium)
		require.NoError(t, err)
		assert.Equal(t, hnt, gotHnt)
	}
}

func TestTranscoder_StrictKeyValidation(t *testing.T) {
	t.Parallel()

	strict := addrconv.NewTranscoder(addrconv.WithStrictKeyValidation())

	_, err := strict.Convert(offCurveSolana, chain.FamilyHelium)
	require.ErrorIs(t, err, common.ErrKeyNotOnCurve)

	_, err = strict.Convert(offCurveHelium, chain.FamilySolana)
	require.ErrorIs(t, err, common.ErrKeyNotOnCurve)

	_, ok := strict.MaybeConvert(offCurveSolana, chain.FamilyHelium)
	assert.False(t, ok)

	got, err := strict.Convert(zeroSolana, chain.FamilyHelium)
	require.NoError(t, err)
	assert.Equal(t, zeroHelium, got)

	// decode errors take precedence over the curve check
	_, err = strict.Convert("not base58 0", chain.FamilyHelium)
	require.ErrorIs(t, err, common.ErrMalformedAddress)
}

func TestTranscoder_ErrorNamesInput(t *testing.T) {
	t.Parallel()

	_, err := addrconv.Convert("12wkBET2rRgE8pahuaczxKbmv7ciehqsne57F9gtzf1PVja1RXv", chain.FamilySolana)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to decode helium address"), err.Error())
}

func TestTranscoder_ConcurrentUse(t *testing.T) {
	t.Parallel()

	transcoder := addrconv.NewTranscoder()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range 100 {
				got, ok := transcoder.MaybeConvert(tokenProgramSolana, chain.FamilyHelium)
				assert.True(t, ok)
				assert.Equal(t, tokenProgramHelium, got)
			}
		}()
	}
	wg.Wait()
}

func TestConvert_PackageLevel(t *testing.T) {
	t.Parallel()

	got, err := addrconv.Convert(zeroSolana, chain.FamilyHelium)
	require.NoError(t, err)
	assert.Equal(t, zeroHelium, got)
}
