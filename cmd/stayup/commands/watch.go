package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantnse/stayup/internal/marketclock"
	"github.com/quantnse/stayup/internal/pipeline"
	"github.com/quantnse/stayup/internal/report"
	"github.com/quantnse/stayup/internal/scanstore"
	"github.com/quantnse/stayup/internal/scheduler"
	"github.com/quantnse/stayup/internal/scheduler/jobs"
)

// watchCmd runs scheduled scans and prints each report to the console
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Scan on schedule and print each report",
	Long: `Runs the cron scheduler without the HTTP server. Every scheduled
scan during market hours prints its report to stdout. Stop with Ctrl-C.

Example:
  go run ./cmd/stayup watch
  go run ./cmd/stayup watch --interval 10m`,
	RunE: runWatch,
}

var intervalFlag time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&intervalFlag, "interval", 0, "poll interval, overrides the cron schedule (e.g. 10m)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, p, err := loadDeps()
	if err != nil {
		return err
	}

	var exporter *report.Exporter
	if cfg.Export.Enabled {
		exporter = report.NewExporter(cfg.Export.Dir, log)
	}

	store := scanstore.New()

	schedule := cfg.Scan.Schedule
	if intervalFlag > 0 {
		schedule = fmt.Sprintf("@every %s", intervalFlag)
	}

	sched := scheduler.New(log)
	scanJob := jobs.NewScanJob(p, store, exporter, schedule, log)
	if err := sched.AddJob(scanJob); err != nil {
		return fmt.Errorf("register scan job: %w", err)
	}

	PrintSuccess(fmt.Sprintf("Watching NSE gainers (schedule %q)", schedule))
	if !marketclock.Now() {
		PrintWarning("Market is closed; scans will resume during NSE hours.")
	}

	// First scan right away so the watcher is not silent until the
	// first cron tick.
	runImmediateScan(p, store, exporter)

	printed := store.Latest()
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			fmt.Println()
			PrintSuccess("Watcher stopped")
			return nil
		case <-ticker.C:
			if latest := store.Latest(); latest != nil && latest != printed {
				fmt.Print(report.Render(latest))
				printed = latest
			}
		}
	}
}

func runImmediateScan(p *pipeline.Pipeline, store *scanstore.Store, exporter *report.Exporter) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := p.Run(ctx)
	if err != nil {
		PrintError(fmt.Sprintf("Initial scan failed: %v", err))
		return
	}

	fmt.Print(report.Render(result))
	store.Set(result)

	if exporter != nil {
		if _, err := exporter.Export(result); err != nil {
			PrintError(fmt.Sprintf("Export failed: %v", err))
		}
	}
}
