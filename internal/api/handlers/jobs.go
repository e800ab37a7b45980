package handlers

import (
	"net/http"

	"github.com/quantnse/stayup/internal/scheduler"
	"github.com/quantnse/stayup/pkg/logger"
)

// JobsHandler exposes scheduler statistics.
type JobsHandler struct {
	scheduler *scheduler.Scheduler
	logger    *logger.Logger
}

// NewJobsHandler creates a jobs handler.
func NewJobsHandler(s *scheduler.Scheduler, log *logger.Logger) *JobsHandler {
	return &JobsHandler{scheduler: s, logger: log}
}

// GetStats returns per-job execution statistics.
// GET /api/jobs/stats
func (h *JobsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.scheduler.GetJobStats())
}
