package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cin7export/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "cin7export",
	Short: "cin7export - harvest Cin7 documents into CSV reports",
	Long: `cin7export harvests financial documents from the Cin7 API across all
configured tenant accounts, filters them to a report date window, flattens
line items into currency-adjusted rows, and writes a single CSV for the
downstream reporting pipeline.

Each report runs every account in parallel and merges the results; one
account failing only shortens that account's contribution.`,
	Version: version,
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
