package indicator

import (
	"math"
	"testing"
)

func TestSMA(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		period int
		want   float64
		wantOk bool
	}{
		{name: "exact window", values: []float64{1, 2, 3, 4, 5}, period: 5, want: 3, wantOk: true},
		{name: "trailing window", values: []float64{100, 1, 2, 3}, period: 3, want: 2, wantOk: true},
		{name: "too short", values: []float64{1, 2}, period: 5, wantOk: false},
		{name: "zero period", values: []float64{1, 2}, period: 0, wantOk: false},
		{name: "empty", values: nil, period: 5, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SMA(tt.values, tt.period)
			if ok != tt.wantOk {
				t.Fatalf("SMA() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SMA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRSI(t *testing.T) {
	// 15 closes, alternating +2/-1 deltas: 7 gains of 2, 7 losses of 1.
	closes := []float64{100}
	for i := 0; i < 7; i++ {
		closes = append(closes, closes[len(closes)-1]+2)
		closes = append(closes, closes[len(closes)-1]-1)
	}

	rsi, ok := RSI(closes, 14)
	if !ok {
		t.Fatal("RSI() not computed with 15 closes")
	}

	// mean gain = 14/14 = 1, mean loss = 7/14 = 0.5, rs = 2, rsi = 100 - 100/3
	want := 100 - 100.0/3.0
	if math.Abs(rsi-want) > 1e-9 {
		t.Errorf("RSI() = %v, want %v", rsi, want)
	}
}

func TestRSI_AllGains(t *testing.T) {
	// Monotonic rise: mean loss is 0, so rs is treated as 0 and rsi = 0.
	closes := make([]float64, 15)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	rsi, ok := RSI(closes, 14)
	if !ok {
		t.Fatal("RSI() not computed")
	}
	if rsi != 0 {
		t.Errorf("RSI() with zero mean loss = %v, want 0", rsi)
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	closes := make([]float64, 14) // 13 deltas, one short
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	if _, ok := RSI(closes, 14); ok {
		t.Error("RSI() computed with only 14 closes, want absent")
	}
}

func TestUptrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		window int
		want   bool
		wantOk bool
	}{
		{name: "strictly rising", values: []float64{1, 2, 3, 4, 5}, window: 5, want: true, wantOk: true},
		{name: "ties allowed", values: []float64{1, 1, 2, 2, 3}, window: 5, want: true, wantOk: true},
		{name: "single dip", values: []float64{1, 2, 3, 2, 4}, window: 5, want: false, wantOk: true},
		{name: "only tail matters", values: []float64{9, 1, 2, 3, 4, 5}, window: 5, want: true, wantOk: true},
		{name: "too short", values: []float64{1, 2, 3}, window: 5, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Uptrend(tt.values, tt.window)
			if ok != tt.wantOk {
				t.Fatalf("Uptrend() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("Uptrend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrailingMinMax(t *testing.T) {
	values := []float64{50, 10, 20, 5, 30}

	min, ok := TrailingMin(values, 3)
	if !ok || min != 5 {
		t.Errorf("TrailingMin() = (%v, %v), want (5, true)", min, ok)
	}

	max, ok := TrailingMax(values, 3)
	if !ok || max != 30 {
		t.Errorf("TrailingMax() = (%v, %v), want (30, true)", max, ok)
	}

	if _, ok := TrailingMin(values, 10); ok {
		t.Error("TrailingMin() computed with short window")
	}
	if _, ok := TrailingMax(values, 10); ok {
		t.Error("TrailingMax() computed with short window")
	}
}
