package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/internal/pipeline"
	"github.com/quantnse/stayup/internal/scanstore"
	"github.com/quantnse/stayup/pkg/config"
	"github.com/quantnse/stayup/pkg/logger"
)

type stubSnapshots struct {
	quotes []contracts.Quote
	err    error
}

func (s *stubSnapshots) Name() string { return "stub" }

func (s *stubSnapshots) FetchSnapshot(ctx context.Context) ([]contracts.Quote, error) {
	return s.quotes, s.err
}

type stubHistory struct{}

func (s *stubHistory) FetchHistory(ctx context.Context, symbol string) (*contracts.HistorySeries, error) {
	return nil, contracts.ErrDataUnavailable
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{LogLevel: "error", LogFormat: "console"})
}

func storedResult() *contracts.ScanResult {
	return &contracts.ScanResult{
		GeneratedAt: time.Date(2025, time.June, 3, 11, 0, 0, 0, time.UTC),
		Source:      "stub",
		Universe: []contracts.ScoredCandidate{{
			Quote:          contracts.Quote{Symbol: "RELIANCE", LastPrice: 101, PrevClose: 97, PercentChange: 4.1},
			CompositeScore: 72,
			Confidence:     82.4,
			WillStayUp:     true,
		}},
		Picks: []contracts.ScoredCandidate{{
			Quote:      contracts.Quote{Symbol: "RELIANCE", LastPrice: 101, PrevClose: 97, PercentChange: 4.1},
			Confidence: 82.4,
			WillStayUp: true,
		}},
	}
}

func newHandler(snapshots *stubSnapshots) (*ScanHandler, *scanstore.Store) {
	store := scanstore.New()
	p := pipeline.New(snapshots, &stubHistory{}, testLogger(), 15)
	return NewScanHandler(store, p, testLogger()), store
}

func TestGetLatestEmpty(t *testing.T) {
	h, _ := newHandler(&stubSnapshots{})

	rec := httptest.NewRecorder()
	h.GetLatest(rec, httptest.NewRequest("GET", "/api/scan/latest", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetLatest(t *testing.T) {
	h, store := newHandler(&stubSnapshots{})
	store.Set(storedResult())

	rec := httptest.NewRecorder()
	h.GetLatest(rec, httptest.NewRequest("GET", "/api/scan/latest", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result contracts.ScanResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Count() != 1 || result.Universe[0].Quote.Symbol != "RELIANCE" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGetPicks(t *testing.T) {
	h, store := newHandler(&stubSnapshots{})
	store.Set(storedResult())

	rec := httptest.NewRecorder()
	h.GetPicks(rec, httptest.NewRequest("GET", "/api/scan/picks", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		Fallback bool                        `json:"fallback"`
		Picks    []contracts.ScoredCandidate `json:"picks"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Picks) != 1 || payload.Picks[0].Quote.Symbol != "RELIANCE" {
		t.Errorf("unexpected picks: %+v", payload.Picks)
	}
}

func TestGetReport(t *testing.T) {
	h, store := newHandler(&stubSnapshots{})
	store.Set(storedResult())

	rec := httptest.NewRecorder()
	h.GetReport(rec, httptest.NewRequest("GET", "/api/scan/report", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if !strings.Contains(rec.Body.String(), "RELIANCE") {
		t.Error("report missing pick symbol")
	}
}

func TestRunScan(t *testing.T) {
	h, store := newHandler(&stubSnapshots{quotes: []contracts.Quote{{
		Symbol:        "TCS",
		LastPrice:     4100,
		OpenPrice:     4010,
		PrevClose:     3980,
		DayHigh:       4120,
		DayLow:        4000,
		PercentChange: 3.0,
		Volume:        900000,
	}}})

	rec := httptest.NewRecorder()
	h.RunScan(rec, httptest.NewRequest("POST", "/api/scan/run", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// A successful on-demand scan becomes the latest result.
	latest := store.Latest()
	if latest == nil || latest.Count() != 1 {
		t.Fatalf("store not updated: %+v", latest)
	}
	if latest.Universe[0].Quote.Symbol != "TCS" {
		t.Errorf("scanned symbol = %s, want TCS", latest.Universe[0].Quote.Symbol)
	}
}

func TestRunScanEmptyUniverse(t *testing.T) {
	h, _ := newHandler(&stubSnapshots{})

	rec := httptest.NewRecorder()
	h.RunScan(rec, httptest.NewRequest("POST", "/api/scan/run", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for empty universe", rec.Code)
	}
}

func TestRunScanFeedFailure(t *testing.T) {
	h, _ := newHandler(&stubSnapshots{err: errors.New("feed down")})

	rec := httptest.NewRecorder()
	h.RunScan(rec, httptest.NewRequest("POST", "/api/scan/run", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}
