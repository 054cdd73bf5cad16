package solana

import (
	"fmt"

	sollib "github.com/gagliardetto/solana-go"
	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/helium/helium-tools-api/chain/common"
)

// MaxAddressLength is the longest base58 rendering of a 32 byte key.
const MaxAddressLength = 44

// DecodeAddress parses a Solana address into its Ed25519 key material.
//
// Solana addresses are base58-encoded public keys (32 bytes) with no version byte or checksum.
// Any 32 byte value is accepted, including values that are not on the curve, such as program
// derived addresses.
func DecodeAddress(address string) (common.RawKey, error) {
	// base58 decoding is quadratic in the input length.
	if len(address) > MaxAddressLength {
		return common.RawKey{}, fmt.Errorf("%w: invalid Solana address format: %d characters, expected at most %d",
			common.ErrMalformedAddress, len(address), MaxAddressLength,
		)
	}

	pubkey, err := sollib.PublicKeyFromBase58(address)
	if err != nil {
		return common.RawKey{}, fmt.Errorf("%w: invalid Solana address format: %s, error: %w",
			common.ErrMalformedAddress, address, err,
		)
	}

	return common.RawKey(pubkey), nil
}

// EncodeAddress renders key as a Solana address.
func EncodeAddress(key common.RawKey) string {
	return sollib.PublicKey(key).String()
}

// AddressToBytes converts a Solana address string to bytes.
func AddressToBytes(address string) ([]byte, error) {
	key, err := DecodeAddress(address)
	if err != nil {
		return nil, err
	}

	return key.Bytes(), nil
}

// AddressConverter implements address conversion for Solana chains.
// This struct implements the AddressConverter strategy interface.
type AddressConverter struct{}

// Decode parses a Solana address into its key material.
func (s AddressConverter) Decode(address string) (common.RawKey, error) {
	return DecodeAddress(address)
}

// Encode renders key material as a Solana address.
func (s AddressConverter) Encode(key common.RawKey) string {
	return EncodeAddress(key)
}

// ConvertToBytes converts a Solana address string to bytes.
func (s AddressConverter) ConvertToBytes(address string) ([]byte, error) {
	return AddressToBytes(address)
}

// Supports returns true if this converter supports the given chain family.
func (s AddressConverter) Supports(family string) bool {
	return family == chain_selectors.FamilySolana
}
