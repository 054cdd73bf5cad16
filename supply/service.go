package supply

import (
	"context"
	"math"
	"strconv"

	sollib "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/helium/helium-tools-api/pkg/logger"
)

// MintReader reads SPL token mint accounts. solana.Chain satisfies it.
type MintReader interface {
	GetMint(ctx context.Context, mint sollib.PublicKey) (*token.Mint, error)
}

// Service reports token supply figures. Circulating and total supply are read from the mint
// account on every call; max supply is a static property of the token.
type Service struct {
	reader MintReader
	lggr   logger.Logger
}

func NewService(reader MintReader, lggr logger.Logger) *Service {
	return &Service{
		reader: reader,
		lggr:   lggr.Named("supply"),
	}
}

// Supply returns the requested supply figure in whole tokens. Circulating and total supply are
// both the mint's current supply; when it cannot be read the failure is logged and 0 is returned.
func (s *Service) Supply(ctx context.Context, tok Token, kind Kind) float64 {
	if kind == KindMax {
		return tok.MaxSupply
	}

	v, err := s.MintSupply(ctx, tok)
	if err != nil {
		s.lggr.Warnw("Failed to read token supply, reporting 0",
			"token", tok.Symbol,
			"mint", tok.Mint.String(),
			"kind", string(kind),
			"error", err,
		)

		return 0
	}

	return v
}

// MintSupply reads the mint account of tok and scales its raw supply by the mint decimals.
func (s *Service) MintSupply(ctx context.Context, tok Token) (float64, error) {
	mint, err := s.reader.GetMint(ctx, tok.Mint)
	if err != nil {
		return 0, err
	}

	return float64(mint.Supply) / math.Pow10(int(mint.Decimals)), nil
}

// FormatAmount renders v in plain decimal notation with the fewest digits that round trip, e.g.
// "223000000" or "1234.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
