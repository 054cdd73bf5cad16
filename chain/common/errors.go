package common

import "errors"

var (
	// ErrMalformedAddress is returned when an address is not valid base58, or when its decoded
	// length does not match the envelope of its format.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrChecksumInvalid is returned when the trailing checksum of a checksummed address does not
	// match the checksum recomputed over the rest of the envelope.
	ErrChecksumInvalid = errors.New("invalid address checksum")

	// ErrUnsupportedKeyType is returned when an address carries a key type other than Ed25519.
	ErrUnsupportedKeyType = errors.New("unsupported key type")

	// ErrKeyNotOnCurve is returned by strict validation when the key is not an edwards25519 point.
	ErrKeyNotOnCurve = errors.New("key is not a valid ed25519 point")
)
