package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	sourceFlag  string
	verboseFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stayup",
	Short: "NSE top-gainer stay-up scanner",
	Long: `stayup scans NSE top gainers and estimates which of them will
hold their gains through the session.

Each scan pulls the live gainer snapshot, fetches a month of daily
history per symbol, computes intraday and trend indicators, scores
every candidate out of 100 and shortlists at most five safe picks.

Usage:
  go run ./cmd/stayup [command]

Examples:
  go run ./cmd/stayup scan
  go run ./cmd/stayup scan --source moneycontrol --export
  go run ./cmd/stayup serve
  go run ./cmd/stayup watch`,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "snapshot source (nse|moneycontrol)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
}
