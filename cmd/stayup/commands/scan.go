package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantnse/stayup/internal/marketclock"
	"github.com/quantnse/stayup/internal/report"
)

// scanCmd runs one scan and prints the report
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one gainer scan and print the report",
	Long: `Runs a single scan: fetches the current NSE top gainers, scores
each one and prints the stay-up report to stdout.

Example:
  go run ./cmd/stayup scan
  go run ./cmd/stayup scan --source moneycontrol
  go run ./cmd/stayup scan --export`,
	RunE: runScan,
}

var exportFlag bool

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&exportFlag, "export", false, "write CSV and report files to the export dir")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, log, p, err := loadDeps()
	if err != nil {
		return err
	}

	if !marketclock.Now() {
		PrintWarning("Market is closed (NSE hours are 09:15-15:30 IST, Mon-Fri). Results may be stale.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := p.Run(ctx)
	if err != nil {
		PrintError(fmt.Sprintf("Scan failed: %v", err))
		return err
	}

	fmt.Print(report.Render(result))

	if exportFlag || cfg.Export.Enabled {
		paths, err := report.NewExporter(cfg.Export.Dir, log).Export(result)
		if err != nil {
			PrintError(fmt.Sprintf("Export failed: %v", err))
			return err
		}
		PrintSuccess(fmt.Sprintf("Exported %d files to %s", len(paths), cfg.Export.Dir))
	}

	return nil
}
