package helium

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	mrbase58 "github.com/mr-tron/base58"

	"github.com/helium/helium-tools-api/chain"
	"github.com/helium/helium-tools-api/chain/common"
)

const (
	// VersionByte is the leading envelope byte of a Helium binary address.
	VersionByte byte = 0x00
	// KeyTypeEd25519 is the key type byte of a mainnet Ed25519 public key. Helium packs the
	// network in the high nibble and the key algorithm in the low nibble.
	KeyTypeEd25519 byte = 0x01

	prefixSize   = 2
	checksumSize = 4

	// EnvelopeSize is the minimum decoded size of an Ed25519 Helium address.
	EnvelopeSize = prefixSize + common.RawKeySize + checksumSize
)

// DecodeAddress parses a Helium base58check address and returns its Ed25519 key material.
//
// The decoded envelope must be at least EnvelopeSize bytes, its trailing 4 bytes must equal the
// double SHA-256 checksum of everything before them, and it must start with VersionByte followed
// by KeyTypeEd25519. Bytes between the key and the checksum are ignored.
func DecodeAddress(address string) (common.RawKey, error) {
	var key common.RawKey

	decoded, err := mrbase58.Decode(address)
	if err != nil {
		return key, fmt.Errorf("%w: invalid Helium address %q: %w", common.ErrMalformedAddress, address, err)
	}

	if len(decoded) < EnvelopeSize {
		return key, fmt.Errorf("%w: invalid Helium address %q: expected at least %d bytes, got %d",
			common.ErrMalformedAddress, address, EnvelopeSize, len(decoded),
		)
	}

	body, sum := decoded[:len(decoded)-checksumSize], decoded[len(decoded)-checksumSize:]
	if !bytes.Equal(checksum(body), sum) {
		return key, fmt.Errorf("%w: Helium address %q", common.ErrChecksumInvalid, address)
	}

	if body[0] != VersionByte || body[1] != KeyTypeEd25519 {
		return key, fmt.Errorf("%w: Helium address %q has key prefix 0x%x",
			common.ErrUnsupportedKeyType, address, body[:prefixSize],
		)
	}

	copy(key[:], body[prefixSize:prefixSize+common.RawKeySize])

	return key, nil
}

// EncodeAddress renders key as a mainnet Ed25519 Helium address.
func EncodeAddress(key common.RawKey) string {
	body := make([]byte, 0, EnvelopeSize)
	body = append(body, VersionByte, KeyTypeEd25519)
	body = append(body, key[:]...)

	return mrbase58.Encode(append(body, checksum(body)...))
}

// AddressToBytes converts a Helium address string to the 32 bytes of its public key.
func AddressToBytes(address string) ([]byte, error) {
	key, err := DecodeAddress(address)
	if err != nil {
		return nil, err
	}

	return key.Bytes(), nil
}

func checksum(b []byte) []byte {
	return chainhash.DoubleHashB(b)[:checksumSize]
}

// AddressConverter implements address conversion for Helium addresses.
// This struct implements the AddressConverter strategy interface.
type AddressConverter struct{}

// Decode parses a Helium address into its key material.
func (AddressConverter) Decode(address string) (common.RawKey, error) {
	return DecodeAddress(address)
}

// Encode renders key material as a Helium address.
func (AddressConverter) Encode(key common.RawKey) string {
	return EncodeAddress(key)
}

// ConvertToBytes converts a Helium address string to bytes.
func (AddressConverter) ConvertToBytes(address string) ([]byte, error) {
	return AddressToBytes(address)
}

// Supports returns true if this converter supports the given address family.
func (AddressConverter) Supports(family string) bool {
	return family == chain.FamilyHelium
}
