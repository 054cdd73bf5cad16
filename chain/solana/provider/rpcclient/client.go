package rpcclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	bin "github.com/gagliardetto/binary"
	sollib "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	solrpc "github.com/gagliardetto/solana-go/rpc"
)

// MintSize is the size of an SPL token mint account.
const MintSize = 82

// ErrAccountNotFound is returned when the requested account does not exist.
var ErrAccountNotFound = errors.New("account not found")

// AccountInfoGetter is the subset of the Solana RPC client used to read accounts.
// *solrpc.Client satisfies it.
type AccountInfoGetter interface {
	GetAccountInfoWithOpts(
		ctx context.Context, account sollib.PublicKey, opts *solrpc.GetAccountInfoOpts,
	) (*solrpc.GetAccountInfoResult, error)
}

// readConfig defines the configuration for reading accounts.
type readConfig struct {
	// RetryAttempts determines how many times an account read is attempted. If set to 0, retries
	// will continue until success or until the context is done.
	RetryAttempts uint
	// RetryDelay is the duration to wait between retry attempts.
	RetryDelay time.Duration
	// Commitment specifies the commitment level accounts are read at.
	Commitment solrpc.CommitmentType
}

// RetryOpts returns the retry options for reading accounts.
func (c *readConfig) RetryOpts(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(c.RetryAttempts),
		retry.Delay(c.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	}
}

// readConfigDefault provides a default configuration for reading accounts.
var readConfigDefault = readConfig{
	RetryAttempts: 3,
	RetryDelay:    200 * time.Millisecond,
	Commitment:    solrpc.CommitmentConfirmed,
}

// Opt is a functional option type that allows for configuring the Client.
type Opt func(*readConfig)

// WithRetry sets the number of attempts and the delay between retries for account reads.
func WithRetry(attempts uint, delay time.Duration) Opt {
	return func(config *readConfig) {
		config.RetryAttempts = attempts
		config.RetryDelay = delay
	}
}

// WithCommitment sets the commitment level accounts are read at.
func WithCommitment(commitment solrpc.CommitmentType) Opt {
	return func(config *readConfig) {
		config.Commitment = commitment
	}
}

// Client is a wrapper around the solana RPC client that reads and decodes accounts, retrying
// transient RPC failures.
type Client struct {
	AccountInfoGetter

	config readConfig
}

// New creates a new Client instance with the provided Solana RPC client.
func New(client AccountInfoGetter, opts ...Opt) *Client {
	config := readConfigDefault
	for _, opt := range opts {
		opt(&config)
	}

	return &Client{
		AccountInfoGetter: client,
		config:            config,
	}
}

// GetMint fetches and decodes the SPL token mint account at the given address.
func (c *Client) GetMint(ctx context.Context, mint sollib.PublicKey) (*token.Mint, error) {
	data, err := c.getAccountData(ctx, mint, c.config.RetryOpts(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("error getting mint account %s: %w", mint, err)
	}

	if len(data) < MintSize {
		return nil, fmt.Errorf("mint account %s has %d bytes, expected %d", mint, len(data), MintSize)
	}

	var out token.Mint
	if err = out.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return nil, fmt.Errorf("error decoding mint account %s: %w", mint, err)
	}

	if !out.IsInitialized {
		return nil, fmt.Errorf("mint account %s is not initialized", mint)
	}

	return &out, nil
}

// getAccountData fetches the raw data of an account, retrying based on the provided retry
// options. A missing account is not retried.
func (c *Client) getAccountData(
	ctx context.Context, account sollib.PublicKey, retryOpts ...retry.Option,
) ([]byte, error) {
	var data []byte

	err := retry.Do(func() error {
		res, rerr := c.GetAccountInfoWithOpts(ctx, account, &solrpc.GetAccountInfoOpts{
			Commitment: c.config.Commitment,
		})
		if rerr != nil {
			if errors.Is(rerr, solrpc.ErrNotFound) {
				return retry.Unrecoverable(ErrAccountNotFound)
			}

			// Retry if we hit an error fetching the account. Public RPC endpoints rate limit.
			return rerr
		}

		if res == nil || res.Value == nil {
			return retry.Unrecoverable(ErrAccountNotFound)
		}

		if res.Value.Data == nil {
			return retry.Unrecoverable(fmt.Errorf("account %s has no data", account))
		}

		data = res.Value.Data.GetBinary()

		return nil
	}, retryOpts...)

	return data, err
}
