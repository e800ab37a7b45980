package contracts

import "time"

// DailyBar is a single daily OHLCV bar.
type DailyBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// HistorySeries is an ordered sequence of daily bars for one symbol,
// most recent bar last.
type HistorySeries struct {
	Symbol string     `json:"symbol"`
	Bars   []DailyBar `json:"bars"`
}

// Len returns the number of bars in the series.
func (h *HistorySeries) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Bars)
}

// Closes returns all closing prices in bar order.
func (h *HistorySeries) Closes() []float64 {
	out := make([]float64, len(h.Bars))
	for i, b := range h.Bars {
		out[i] = b.Close
	}
	return out
}

// Lows returns all daily lows in bar order.
func (h *HistorySeries) Lows() []float64 {
	out := make([]float64, len(h.Bars))
	for i, b := range h.Bars {
		out[i] = b.Low
	}
	return out
}

// Highs returns all daily highs in bar order.
func (h *HistorySeries) Highs() []float64 {
	out := make([]float64, len(h.Bars))
	for i, b := range h.Bars {
		out[i] = b.High
	}
	return out
}

// Volumes returns all daily volumes in bar order.
func (h *HistorySeries) Volumes() []float64 {
	out := make([]float64, len(h.Bars))
	for i, b := range h.Bars {
		out[i] = b.Volume
	}
	return out
}
