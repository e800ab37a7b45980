package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantnse/stayup/internal/api"
	"github.com/quantnse/stayup/internal/api/handlers"
	"github.com/quantnse/stayup/internal/report"
	"github.com/quantnse/stayup/internal/scanstore"
	"github.com/quantnse/stayup/internal/scheduler"
	"github.com/quantnse/stayup/internal/scheduler/jobs"
)

// serveCmd starts the API server with the scheduled scanner
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server with scheduled scans",
	Long: `Starts the HTTP API server and the cron scheduler. Scans run on
the configured schedule during market hours and the latest result is
served over HTTP.

Endpoints:
  GET  /health            - Health check
  GET  /api/scan/latest   - Full latest scan result
  GET  /api/scan/picks    - Shortlist only
  GET  /api/scan/report   - Latest scan as plain text
  POST /api/scan/run      - Trigger a scan now
  GET  /api/jobs/stats    - Scheduler statistics

Example:
  go run ./cmd/stayup serve
  go run ./cmd/stayup serve --port 8085`,
	RunE: runServe,
}

var portFlag string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&portFlag, "port", "", "API server port")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, p, err := loadDeps()
	if err != nil {
		return err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}

	store := scanstore.New()

	var exporter *report.Exporter
	if cfg.Export.Enabled {
		exporter = report.NewExporter(cfg.Export.Dir, log)
	}

	sched := scheduler.New(log)
	scanJob := jobs.NewScanJob(p, store, exporter, cfg.Scan.Schedule, log)
	if err := sched.AddJob(scanJob); err != nil {
		return fmt.Errorf("register scan job: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	scanHandler := handlers.NewScanHandler(store, p, log)
	jobsHandler := handlers.NewJobsHandler(sched, log)
	server := api.New(cfg, log, api.NewRouter(scanHandler, jobsHandler, log))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	PrintSuccess(fmt.Sprintf("API server listening on :%s (scan schedule %q)", cfg.Port, cfg.Scan.Schedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
