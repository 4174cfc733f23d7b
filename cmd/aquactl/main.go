package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	flagAddr    string
	flagSession string

	api *apiClient

	rootCmd = &cobra.Command{
		Use:   "aquactl",
		Short: "Terminal client for the AquaView demo API",
		Long: `aquactl drives the AquaView demo service from the terminal: render the
grid, file citizen reports, work the alert queue, and follow the
realtime feed.

Unless --session is given, every invocation opens its own session and
ends it on exit. Pass --session to point several terminals at the same
state, e.g. run "aquactl watch" in one and "aquactl report" in another
to see the confirmation notice appear and expire.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			api = newAPIClient(flagAddr, flagSession)
			if flagSession == "" {
				return api.openSession(cmd.Context())
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// The command context is already cancelled when a watch is
			// interrupted, so teardown runs on a fresh one.
			return api.closeSession(context.Background())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "http://localhost:8080", "base URL of the AquaView API")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "", "reuse an existing session id instead of opening one")

	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(cellCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(ackCmd)
	rootCmd.AddCommand(dispatchCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(boardCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
