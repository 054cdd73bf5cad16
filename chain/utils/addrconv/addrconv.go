package addrconv

import (
	"errors"

	"github.com/helium/helium-tools-api/chain/common"
)

// ErrUnsupportedFamily is returned when no converter is registered for a family.
var ErrUnsupportedFamily = errors.New("unsupported address family")

// Converter defines the strategy interface for address conversion.
// Each address family implements this interface to provide its specific encoding rules.
type Converter interface {
	// Decode parses an address string into its raw key material
	Decode(address string) (common.RawKey, error)

	// Encode renders raw key material as an address string
	Encode(key common.RawKey) string

	// ConvertToBytes converts an address string to bytes according to the family's format
	ConvertToBytes(address string) ([]byte, error)

	// Supports returns true if this converter supports the given family
	Supports(family string) bool
}
