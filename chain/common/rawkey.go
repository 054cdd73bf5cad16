package common

import (
	"encoding/hex"
	"fmt"

	"filippo.io/edwards25519"
)

// RawKeySize is the size of an Ed25519 public key.
const RawKeySize = 32

// RawKey is the Ed25519 public key material shared by every supported address format. It carries
// no envelope: version bytes, key type markers and checksums belong to the address encodings.
type RawKey [RawKeySize]byte

// RawKeyFromBytes copies b into a RawKey. b must be exactly RawKeySize bytes long.
func RawKeyFromBytes(b []byte) (RawKey, error) {
	var key RawKey
	if len(b) != RawKeySize {
		return key, fmt.Errorf("%w: expected %d key bytes, got %d", ErrMalformedAddress, RawKeySize, len(b))
	}
	copy(key[:], b)

	return key, nil
}

// Bytes returns a copy of the key material.
func (k RawKey) Bytes() []byte {
	b := make([]byte, RawKeySize)
	copy(b, k[:])

	return b
}

// String returns the key as lowercase hex.
func (k RawKey) String() string {
	return hex.EncodeToString(k[:])
}

// IsOnCurve reports whether the key decodes to a point on the edwards25519 curve.
//
// Neither address format requires this: both accept any 32 byte value and leave key validity to
// the consuming chain.
func (k RawKey) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(k[:])

	return err == nil
}

// ValidateOnCurve returns ErrKeyNotOnCurve if the key is not a valid curve point.
func (k RawKey) ValidateOnCurve() error {
	if !k.IsOnCurve() {
		return fmt.Errorf("%w: %s", ErrKeyNotOnCurve, k)
	}

	return nil
}
