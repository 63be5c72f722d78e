package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oriondeskd",
	Short: "OrionDesk mock API daemon",
	Long: `OrionDesk serves a mock customer-portal REST API: platform incidents,
customer accounts, and orders, backed by fixed in-memory sample data.

It is intended for frontend development and integration testing against
stable, well-known fixtures.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
