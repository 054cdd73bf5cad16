package addrconv

import (
	"fmt"
	"sync"

	"github.com/helium/helium-tools-api/chain"
	"github.com/helium/helium-tools-api/chain/common"
	"github.com/helium/helium-tools-api/chain/helium"
	"github.com/helium/helium-tools-api/chain/solana"
)

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *addressConverterRegistry
)

func registry() *addressConverterRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newAddressConverterRegistry()
	})

	return defaultRegistry
}

// ToBytes converts an address string to its raw key bytes based on the address family.
//
// Usage:
//
//	bytes, err := addrconv.ToBytes("solana", "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
func ToBytes(family, address string) ([]byte, error) {
	converter, err := registry().converter(family)
	if err != nil {
		return nil, err
	}

	return converter.ConvertToBytes(address)
}

// FromBytes encodes raw key bytes as an address of the given family. raw must be exactly 32
// bytes long.
func FromBytes(family string, raw []byte) (string, error) {
	converter, err := registry().converter(family)
	if err != nil {
		return "", err
	}

	key, err := common.RawKeyFromBytes(raw)
	if err != nil {
		return "", err
	}

	return converter.Encode(key), nil
}

// Convert translates an address into the target family using the default Transcoder.
func Convert(address, target string) (string, error) {
	return defaultTranscoder.Convert(address, target)
}

// addressConverterRegistry maps each address family to its conversion strategy. It is never
// mutated after construction.
type addressConverterRegistry struct {
	converters map[string]Converter
}

// newAddressConverterRegistry creates a new registry with all supported converters pre-registered.
func newAddressConverterRegistry() *addressConverterRegistry {
	return &addressConverterRegistry{
		converters: map[string]Converter{
			chain.FamilyHelium: helium.AddressConverter{},
			chain.FamilySolana: solana.AddressConverter{},
		},
	}
}

func (r *addressConverterRegistry) converter(family string) (Converter, error) {
	converter, exists := r.converters[family]
	if !exists {
		return nil, fmt.Errorf("%w: no address converter registered for family: %s", ErrUnsupportedFamily, family)
	}

	return converter, nil
}

// counterpart returns the family an address must be in to be converted into target.
func counterpart(target string) (string, error) {
	switch target {
	case chain.FamilyHelium:
		return chain.FamilySolana, nil
	case chain.FamilySolana:
		return chain.FamilyHelium, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFamily, target)
	}
}
