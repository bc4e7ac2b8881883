// Command reservasctl runs schema migrations and calls the reservation stored
// procedures from a terminal, through the same gateway the HTTP service uses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "reservasctl",
		Short:        "Operator tool for the hotel reservation service",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		MigrateCmd(),
		PingCmd(),
		AvailabilityCmd(),
		RatesCmd(),
		PriceCmd(),
		ReserveCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
