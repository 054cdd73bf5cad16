package mocks

import (
	"encoding/binary"

	solana "github.com/gagliardetto/solana-go"
	rpc "github.com/gagliardetto/solana-go/rpc"
)

// MintAccount builds a getAccountInfo result holding an initialized SPL token mint with the given
// supply and decimals and no authorities.
func MintAccount(supply uint64, decimals uint8) *rpc.GetAccountInfoResult {
	data := make([]byte, 82)
	binary.LittleEndian.PutUint64(data[36:44], supply)
	data[44] = decimals
	data[45] = 1

	return &rpc.GetAccountInfoResult{
		Value: &rpc.Account{
			Owner: solana.TokenProgramID,
			Data:  rpc.DataBytesOrJSONFromBytes(data),
		},
	}
}

// EmptyAccount builds a getAccountInfo result for an address with no account.
func EmptyAccount() *rpc.GetAccountInfoResult {
	return &rpc.GetAccountInfoResult{}
}
