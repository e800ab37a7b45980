// Package jobs defines the scheduled work wired into the scheduler.
package jobs

import (
	"context"
	"time"

	"github.com/quantnse/stayup/internal/marketclock"
	"github.com/quantnse/stayup/internal/pipeline"
	"github.com/quantnse/stayup/internal/report"
	"github.com/quantnse/stayup/internal/scanstore"
	"github.com/quantnse/stayup/pkg/logger"
)

const scanTimeout = 2 * time.Minute

// ScanJob runs the gainer scan on schedule during market hours.
type ScanJob struct {
	pipeline *pipeline.Pipeline
	store    *scanstore.Store
	exporter *report.Exporter
	schedule string
	logger   *logger.Logger
}

// NewScanJob creates the scheduled scan. exporter may be nil to skip
// flat-file export.
func NewScanJob(
	p *pipeline.Pipeline,
	store *scanstore.Store,
	exporter *report.Exporter,
	schedule string,
	log *logger.Logger,
) *ScanJob {
	return &ScanJob{
		pipeline: p,
		store:    store,
		exporter: exporter,
		schedule: schedule,
		logger:   log,
	}
}

// Name implements scheduler.Job.
func (j *ScanJob) Name() string {
	return "gainer_scan"
}

// Schedule implements scheduler.Job.
func (j *ScanJob) Schedule() string {
	return j.schedule
}

// Run executes one scan. Outside NSE hours the run is a no-op so the
// cron expression can stay loose.
func (j *ScanJob) Run(ctx context.Context) error {
	if !marketclock.Now() {
		j.logger.Debug("Market closed, skipping scheduled scan")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	result, err := j.pipeline.Run(ctx)
	if err != nil {
		return err
	}

	j.store.Set(result)

	if j.exporter != nil {
		if _, err := j.exporter.Export(result); err != nil {
			// Export failure should not mark the scan itself failed.
			j.logger.WithError(err).Warn("Failed to export scan artifacts")
		}
	}

	return nil
}
