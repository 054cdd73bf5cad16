// Package address provides CLI commands for converting and inspecting account addresses.
package address

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helium/helium-tools-api/chain"
	"github.com/helium/helium-tools-api/chain/utils/addrconv"
)

// NewCommand creates the address command with all subcommands.
//
// Usage:
//
//	rootCmd.AddCommand(address.NewCommand())
//
// Unlike the HTTP endpoint, these commands report why a conversion failed and exit non-zero.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Address conversion commands",
	}

	cmd.AddCommand(
		newConvertCmd(),
		newDecodeCmd(),
		newEncodeCmd(),
	)

	return cmd
}

func familyUsage() string {
	return strings.Join(chain.Families(), "|")
}

func validateFamily(flag, family string) error {
	if !chain.IsFamily(family) {
		return fmt.Errorf("%w: --%s must be one of %s, got %q", addrconv.ErrUnsupportedFamily, flag, familyUsage(), family)
	}

	return nil
}

func newConvertCmd() *cobra.Command {
	var (
		to     string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "convert <address>",
		Short: "Convert an address into the other family",
		Example: `  helium-tools-api address convert 12wkBET2rRgE8pahuaczxKbmv7ciehqsne57F9gtzf1PVja1RXu --to solana
  helium-tools-api address convert TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA --to helium`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFamily("to", to); err != nil {
				return err
			}

			var opts []addrconv.Option
			if strict {
				opts = append(opts, addrconv.WithStrictKeyValidation())
			}

			out, err := addrconv.NewTranscoder(opts...).Convert(args[0], to)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "Target address family ("+familyUsage()+")")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject keys that are not valid ed25519 points")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newDecodeCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "decode <address>",
		Short: "Print the raw public key of an address as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFamily("from", from); err != nil {
				return err
			}

			raw, err := addrconv.ToBytes(from, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(raw))

			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "Address family of the input ("+familyUsage()+")")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newEncodeCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "encode <hex key>",
		Short: "Encode a 32 byte hex public key as an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFamily("to", to); err != nil {
				return err
			}

			raw, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex key: %w", err)
			}

			out, err := addrconv.FromBytes(to, raw)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "Target address family ("+familyUsage()+")")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
