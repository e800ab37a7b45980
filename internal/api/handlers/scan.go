// Package handlers implements the HTTP API endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/internal/pipeline"
	"github.com/quantnse/stayup/internal/report"
	"github.com/quantnse/stayup/internal/scanstore"
	"github.com/quantnse/stayup/pkg/logger"
)

// ScanHandler serves scan results and triggers on-demand scans.
type ScanHandler struct {
	store    *scanstore.Store
	pipeline *pipeline.Pipeline
	logger   *logger.Logger
}

// NewScanHandler creates a scan handler.
func NewScanHandler(store *scanstore.Store, p *pipeline.Pipeline, log *logger.Logger) *ScanHandler {
	return &ScanHandler{
		store:    store,
		pipeline: p,
		logger:   log,
	}
}

// GetLatest returns the full latest scan result.
// GET /api/scan/latest
func (h *ScanHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	result := h.store.Latest()
	if result == nil {
		writeError(w, http.StatusNotFound, "no scan has run yet")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetPicks returns only the shortlist from the latest scan.
// GET /api/scan/picks
func (h *ScanHandler) GetPicks(w http.ResponseWriter, r *http.Request) {
	result := h.store.Latest()
	if result == nil {
		writeError(w, http.StatusNotFound, "no scan has run yet")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"generated_at": result.GeneratedAt,
		"fallback":     result.Fallback,
		"picks":        result.Picks,
	})
}

// GetReport returns the latest scan rendered as plain text.
// GET /api/scan/report
func (h *ScanHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	result := h.store.Latest()
	if result == nil {
		writeError(w, http.StatusNotFound, "no scan has run yet")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report.Render(result)))
}

// RunScan executes a scan synchronously and returns the fresh result.
// POST /api/scan/run
func (h *ScanHandler) RunScan(w http.ResponseWriter, r *http.Request) {
	result, err := h.pipeline.Run(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("On-demand scan failed")

		status := http.StatusBadGateway
		if errors.Is(err, contracts.ErrEmptyUniverse) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	h.store.Set(result)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
