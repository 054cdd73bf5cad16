package supply

import (
	"fmt"
	"slices"

	sollib "github.com/gagliardetto/solana-go"
)

// Token is an SPL token whose supply the service reports.
type Token struct {
	Symbol    string
	Mint      sollib.PublicKey
	MaxSupply float64
}

// Tokens is an immutable token table keyed by lowercase symbol.
type Tokens struct {
	bySymbol map[string]Token
}

// NewTokens builds a token table. Symbols must be unique.
func NewTokens(tokens ...Token) (Tokens, error) {
	bySymbol := make(map[string]Token, len(tokens))
	for _, t := range tokens {
		if t.Symbol == "" {
			return Tokens{}, fmt.Errorf("token with mint %s has no symbol", t.Mint)
		}
		if _, dup := bySymbol[t.Symbol]; dup {
			return Tokens{}, fmt.Errorf("duplicate token symbol %q", t.Symbol)
		}
		bySymbol[t.Symbol] = t
	}

	return Tokens{bySymbol: bySymbol}, nil
}

// DefaultTokens returns the HNT, IOT and MOBILE mints on Solana mainnet.
func DefaultTokens() Tokens {
	tokens, err := NewTokens(
		Token{
			Symbol:    "hnt",
			Mint:      sollib.MustPublicKeyFromBase58("hntyVP6YFm1Hg25TN9WGLqM12b8TQmcknKrdu1oxWux"),
			MaxSupply: 223_000_000,
		},
		Token{
			Symbol:    "iot",
			Mint:      sollib.MustPublicKeyFromBase58("iotEVVZLEywoTn1QdwNPddxPWszn3zFhEot3MfL9fns"),
			MaxSupply: 200_000_000_000,
		},
		Token{
			Symbol:    "mobile",
			Mint:      sollib.MustPublicKeyFromBase58("mb1eu7TzEc71KxDpsmsKoucSSuuoGLv1drys1oP2jh6"),
			MaxSupply: 230_000_000_000,
		},
	)
	if err != nil {
		panic(err)
	}

	return tokens
}

// Lookup returns the token registered under symbol. Symbols are matched exactly.
func (t Tokens) Lookup(symbol string) (Token, bool) {
	tok, ok := t.bySymbol[symbol]

	return tok, ok
}

// Symbols returns the registered symbols in sorted order.
func (t Tokens) Symbols() []string {
	symbols := make([]string, 0, len(t.bySymbol))
	for s := range t.bySymbol {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	return symbols
}
