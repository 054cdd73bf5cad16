package addrconv

import (
	"fmt"
)

var defaultTranscoder = NewTranscoder()

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithStrictKeyValidation rejects decoded keys that are not points on the edwards25519 curve.
// Solana program derived addresses are off curve, so this is not suitable for arbitrary Solana
// accounts.
func WithStrictKeyValidation() Option {
	return func(t *Transcoder) {
		t.strict = true
	}
}

// Transcoder converts addresses between the Helium and Solana encodings of the same Ed25519 key.
// It holds no mutable state and is safe for concurrent use.
type Transcoder struct {
	registry *addressConverterRegistry
	strict   bool
}

// NewTranscoder returns a Transcoder backed by the default converter registry.
func NewTranscoder(opts ...Option) *Transcoder {
	t := &Transcoder{registry: registry()}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Convert decodes address as the family opposite to target and re-encodes its key as target.
//
// The error wraps one of the chain/common sentinels, or ErrUnsupportedFamily when target is not a
// known family.
func (t *Transcoder) Convert(address, target string) (string, error) {
	source, err := counterpart(target)
	if err != nil {
		return "", err
	}

	decoder, err := t.registry.converter(source)
	if err != nil {
		return "", err
	}
	encoder, err := t.registry.converter(target)
	if err != nil {
		return "", err
	}

	key, err := decoder.Decode(address)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s address: %w", source, err)
	}

	if t.strict {
		if err = key.ValidateOnCurve(); err != nil {
			return "", err
		}
	}

	return encoder.Encode(key), nil
}

// MaybeConvert is Convert with every failure reported as ("", false).
func (t *Transcoder) MaybeConvert(address, target string) (string, bool) {
	out, err := t.Convert(address, target)
	if err != nil {
		return "", false
	}

	return out, true
}
