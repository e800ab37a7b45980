package nse

import (
	"testing"
)

const sampleGainers = `{
	"time": "Jun 03, 2025 11:02:15",
	"data": [
		{
			"symbol": "ADANIPORTS",
			"openPrice": "1,412.00",
			"highPrice": "1,468.90",
			"lowPrice": "1,405.10",
			"ltp": "1,455.25",
			"previousPrice": "1,398.60",
			"netPrice": "4.05",
			"tradedQuantity": "2,345,678",
			"turnoverInLakhs": "33,812.44"
		},
		{
			"symbol": "tatasteel",
			"openPrice": "151.20",
			"highPrice": "156.80",
			"lowPrice": "150.90",
			"ltp": "155.40",
			"previousPrice": "150.10",
			"netPrice": "3.53",
			"tradedQuantity": "9,812,332",
			"turnoverInLakhs": "15,240.10"
		},
		{
			"symbol": "FLATLINE",
			"openPrice": "100.00",
			"highPrice": "100.00",
			"lowPrice": "100.00",
			"ltp": "100.00",
			"previousPrice": "100.00",
			"netPrice": "0.00",
			"tradedQuantity": "1,000",
			"turnoverInLakhs": "1.00"
		},
		{
			"symbol": "BROKEN",
			"openPrice": "-",
			"highPrice": "-",
			"lowPrice": "-",
			"ltp": "n/a",
			"previousPrice": "-",
			"netPrice": "-",
			"tradedQuantity": "-",
			"turnoverInLakhs": "-"
		}
	]
}`

func TestParseGainers(t *testing.T) {
	quotes, err := parseGainers([]byte(sampleGainers))
	if err != nil {
		t.Fatalf("parseGainers() error = %v", err)
	}

	if len(quotes) != 2 {
		t.Fatalf("parseGainers() returned %d quotes, want 2", len(quotes))
	}

	first := quotes[0]
	if first.Symbol != "ADANIPORTS" {
		t.Errorf("Symbol = %q, want ADANIPORTS", first.Symbol)
	}
	if first.LastPrice != 1455.25 {
		t.Errorf("LastPrice = %v, want 1455.25", first.LastPrice)
	}
	if first.PrevClose != 1398.60 {
		t.Errorf("PrevClose = %v, want 1398.60", first.PrevClose)
	}
	if first.PercentChange != 4.05 {
		t.Errorf("PercentChange = %v, want 4.05", first.PercentChange)
	}
	if first.Volume != 2345678 {
		t.Errorf("Volume = %v, want 2345678", first.Volume)
	}

	// Lowercase feed symbols are normalized.
	if quotes[1].Symbol != "TATASTEEL" {
		t.Errorf("Symbol = %q, want TATASTEEL", quotes[1].Symbol)
	}
}

func TestParseGainersMalformedBody(t *testing.T) {
	if _, err := parseGainers([]byte("<html>blocked</html>")); err == nil {
		t.Fatal("parseGainers() expected error for non-JSON body")
	}
}

func TestParseGainersEmptyData(t *testing.T) {
	quotes, err := parseGainers([]byte(`{"time": "", "data": []}`))
	if err != nil {
		t.Fatalf("parseGainers() error = %v", err)
	}
	if len(quotes) != 0 {
		t.Errorf("parseGainers() returned %d quotes, want 0", len(quotes))
	}
}

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1,234.55", 1234.55},
		{" 42.00 ", 42},
		{"-", 0},
		{"", 0},
		{"n/a", 0},
		{"12,34,567.89", 1234567.89},
	}

	for _, tt := range tests {
		if got := cleanNumber(tt.in); got != tt.want {
			t.Errorf("cleanNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRowToQuoteValidates(t *testing.T) {
	row := gainersRow{
		Symbol:        "OK",
		LTP:           "101.00",
		PreviousPrice: "100.00",
		NetPrice:      "1.00",
	}
	if q, ok := row.toQuote(); !ok || q.Symbol != "OK" {
		t.Errorf("toQuote() = (%v, %v), want valid OK quote", q, ok)
	}

	row.NetPrice = "-0.50"
	if _, ok := row.toQuote(); ok {
		t.Error("toQuote() accepted a negative change")
	}
}
