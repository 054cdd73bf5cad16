/*
Package addrconv converts account addresses between the Helium and Solana
encodings of the same Ed25519 public key.

Each family registers a Converter strategy (chain/helium and chain/solana). The
Transcoder decodes an address with the converter of the family opposite to the
requested target and encodes the recovered key with the target's converter:

	t := addrconv.NewTranscoder()

	sol, err := t.Convert("12wkBET2rRgE8pahuaczxKbmv7ciehqsne57F9gtzf1PVja1RXu", "solana")
	// sol == "11111111111111111111111111111111"

	hnt, ok := t.MaybeConvert("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", "helium")
	// hnt == "12zmaz84LWb5zTUkWSCRGMXRRPUypisLygqcUWQgkfES4xUPB7M", ok == true

Convert reports why a conversion failed; match the result with errors.Is
against chain/common.ErrMalformedAddress, ErrChecksumInvalid,
ErrUnsupportedKeyType, ErrKeyNotOnCurve or ErrUnsupportedFamily. MaybeConvert
reports any failure as ("", false).

The package level helpers use a registry that is built once and shared:

	raw, err := addrconv.ToBytes("helium", address)  // 32 key bytes
	addr, err := addrconv.FromBytes("solana", raw)

# Strict key validation

Neither encoding checks that the key is a point on the curve, and Solana
program derived addresses are deliberately off curve. WithStrictKeyValidation
adds that check after decoding for callers that only expect wallet keys.
*/
package addrconv
