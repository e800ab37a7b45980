package contracts

import "strings"

// Quote is one exchange snapshot for a symbol at a point in time.
// Immutable once fetched; downstream stages derive from it, never mutate it.
type Quote struct {
	Symbol        string  `json:"symbol"`
	LastPrice     float64 `json:"last_price"`
	OpenPrice     float64 `json:"open_price"`
	PrevClose     float64 `json:"prev_close"`
	DayHigh       float64 `json:"day_high"`
	DayLow        float64 `json:"day_low"`
	PercentChange float64 `json:"percent_change"`
	Volume        float64 `json:"volume"`
	Turnover      float64 `json:"turnover"`
}

// Normalize trims and upper-cases the symbol in place.
// Feed symbols arrive in mixed case with stray whitespace.
func (q *Quote) Normalize() {
	q.Symbol = strings.ToUpper(strings.TrimSpace(q.Symbol))
}

// Validate checks the structural invariants a quote must hold before it may
// enter scoring. Gap calculations divide by prev_close, so a non-positive
// value is rejected here rather than silently defaulted mid-calculation.
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.Symbol) == "" {
		return &ValidationError{Reason: "empty symbol"}
	}
	if q.PrevClose <= 0 {
		return &ValidationError{Symbol: q.Symbol, Reason: "non-positive previous close"}
	}
	return nil
}

// DayRange returns the intraday range (high - low).
func (q *Quote) DayRange() float64 {
	return q.DayHigh - q.DayLow
}
