package contracts

// IndicatorSet holds the derived metrics for one symbol. A field is nil when
// its data preconditions did not hold, which keeps "not computed"
// distinguishable from "computed as false/zero". Scoring treats absent as a
// zero contribution, never as true.
type IndicatorSet struct {
	// Day range
	PositionInRange *float64 `json:"position_in_range,omitempty"` // 0-100, distance from low across the day's range
	NearHigh        *bool    `json:"near_high,omitempty"`         // within 10% of range from day_high
	FarFromLow      *bool    `json:"far_from_low,omitempty"`      // position_in_range > 70

	// Gap / open
	AboveOpen      *bool `json:"above_open,omitempty"`
	AbovePrevClose *bool `json:"above_prev_close,omitempty"`

	// Trend
	AboveMA5  *bool    `json:"above_ma5,omitempty"`
	AboveMA10 *bool    `json:"above_ma10,omitempty"`
	AboveMA20 *bool    `json:"above_ma20,omitempty"`
	Uptrend5D *bool    `json:"uptrend_5d,omitempty"` // non-decreasing closes over the last 5 bars
	RSI       *float64 `json:"rsi,omitempty"`
	RSISafe   *bool    `json:"rsi_safe,omitempty"` // 30 < rsi < 70

	// Support / resistance
	SupportLevel       *float64 `json:"support_level,omitempty"`    // min low over last 10 bars
	ResistanceLevel    *float64 `json:"resistance_level,omitempty"` // max high over last 10 bars
	AboveSupport       *bool    `json:"above_support,omitempty"`
	SupportDistancePct *float64 `json:"support_distance_pct,omitempty"`

	// Volume
	VolumeRatio *float64 `json:"volume_ratio,omitempty"` // current volume / 5-day average volume
	HighVolume  *bool    `json:"high_volume,omitempty"`  // ratio > 1.5
}

// Float wraps a float64 for an optional indicator field.
func Float(v float64) *float64 { return &v }

// Bool wraps a bool for an optional indicator field.
func Bool(v bool) *bool { return &v }

// BoolValue reads an optional bool; absent counts as false.
func BoolValue(p *bool) bool {
	return p != nil && *p
}

// FloatValue reads an optional float, reporting presence.
func FloatValue(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
