/*
Package chain defines the address families handled by the service and the
chain abstraction used to read on-chain state.

# Address families

Two families are understood, each identified by a string that doubles as the
value of the "to" query parameter on the address endpoint:

	chain.FamilyHelium // "helium": base58check envelope, version 0x00, key type 0x01
	chain.FamilySolana // "solana": plain base58 public key

Both carry the same 32 byte Ed25519 public key, so an address in one family
always has exactly one equivalent in the other. The codecs live in
chain/helium and chain/solana, and chain/utils/addrconv dispatches between them.

# BlockChain and Provider

A BlockChain reports its selector and name as registered in chain-selectors:

	func printChainInfo(bc chain.BlockChain) {
		fmt.Printf("Chain: %s\n", bc.String())  // "solana-mainnet (124615329519749607)"
		fmt.Printf("Family: %s\n", bc.Family()) // "solana"
	}

A Provider builds a BlockChain from configuration:

	p := provider.NewRPCChainProvider(selector, provider.RPCChainProviderConfig{
		HTTPURL: "https://api.mainnet-beta.solana.com",
	})
	bc, err := p.Initialize(ctx)
*/
package chain
