// Command helium-tools-api serves the Helium tools HTTP API and offers offline address conversion.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/helium/helium-tools-api/pkg/commands"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "helium-tools-api",
		Short:         "Helium address and token supply tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmds := commands.New()
	root.AddCommand(
		cmds.Serve(),
		cmds.Address(),
		cmds.Config(),
	)

	return root
}

func main() {
	// A .env file is optional; only malformed files are fatal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
