package yahoo

import (
	"errors"
	"testing"

	"github.com/quantnse/stayup/internal/contracts"
)

const sampleChart = `{
	"chart": {
		"result": [{
			"timestamp": [1748822400, 1748908800, 1748995200],
			"indicators": {
				"quote": [{
					"open":   [100.0, 102.5, null],
					"high":   [103.0, 105.0, null],
					"low":    [99.0, 101.0, null],
					"close":  [102.0, 104.2, null],
					"volume": [1500000, 1820000, null]
				}]
			}
		}],
		"error": null
	}
}`

func TestParseChart(t *testing.T) {
	series, err := parseChart([]byte(sampleChart))
	if err != nil {
		t.Fatalf("parseChart() error = %v", err)
	}

	// The trailing null bar is dropped.
	if series.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", series.Len())
	}

	last := series.Bars[1]
	if last.Close != 104.2 {
		t.Errorf("Close = %v, want 104.2", last.Close)
	}
	if last.Open != 102.5 {
		t.Errorf("Open = %v, want 102.5", last.Open)
	}
	if last.Volume != 1820000 {
		t.Errorf("Volume = %v, want 1820000", last.Volume)
	}
	if !series.Bars[0].Date.Before(last.Date) {
		t.Error("bars are not ordered oldest first")
	}
}

func TestParseChartAPIError(t *testing.T) {
	body := `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found"}}}`

	_, err := parseChart([]byte(body))
	if !errors.Is(err, contracts.ErrDataUnavailable) {
		t.Errorf("parseChart() error = %v, want ErrDataUnavailable", err)
	}
}

func TestParseChartAllNullBars(t *testing.T) {
	body := `{
		"chart": {
			"result": [{
				"timestamp": [1748822400],
				"indicators": {"quote": [{"open": [null], "high": [null], "low": [null], "close": [null], "volume": [null]}]}
			}],
			"error": null
		}
	}`

	_, err := parseChart([]byte(body))
	if !errors.Is(err, contracts.ErrDataUnavailable) {
		t.Errorf("parseChart() error = %v, want ErrDataUnavailable", err)
	}
}

func TestParseChartMalformed(t *testing.T) {
	if _, err := parseChart([]byte("not json")); err == nil {
		t.Fatal("parseChart() expected error for malformed body")
	}
}
