package indicator

import (
	"github.com/quantnse/stayup/internal/contracts"
)

// Window lengths gating the history-derived indicators. A window that is not
// fully populated leaves its indicator absent.
const (
	maShortWindow   = 5
	maMidWindow     = 10
	maLongWindow    = 20
	trendWindow     = 5
	rsiPeriod       = 14
	supportWindow   = 10
	volumeAvgWindow = 5

	nearHighFraction   = 0.10 // within 10% of the day's range from the high
	farFromLowPosition = 70.0 // top 30% of the day's range
	rsiSafeLow         = 30.0
	rsiSafeHigh        = 70.0
	highVolumeRatio    = 1.5
)

// Calculator derives an IndicatorSet from a quote and its optional history.
type Calculator struct{}

// NewCalculator creates a new indicator calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate produces the indicator set for one candidate. Missing or short
// history degrades gracefully: the affected fields stay absent. Only a
// structurally invalid quote is an error.
func (c *Calculator) Calculate(quote contracts.Quote, history *contracts.HistorySeries) (contracts.IndicatorSet, error) {
	if err := quote.Validate(); err != nil {
		return contracts.IndicatorSet{}, err
	}

	var set contracts.IndicatorSet
	c.applyRange(quote, &set)
	c.applyGap(quote, &set)

	if history.Len() > 0 {
		c.applyTrend(quote, history, &set)
		c.applySupportResistance(quote, history, &set)
		c.applyVolume(quote, history, &set)
	}

	return set, nil
}

// applyRange derives the intraday range position. A degenerate range
// (high == low) leaves all range fields absent so downstream rules see
// "unknown" rather than a false negative.
func (c *Calculator) applyRange(q contracts.Quote, set *contracts.IndicatorSet) {
	dayRange := q.DayRange()
	if dayRange <= 0 {
		return
	}

	position := (q.LastPrice - q.DayLow) / dayRange * 100
	set.PositionInRange = contracts.Float(position)
	set.NearHigh = contracts.Bool(q.DayHigh-q.LastPrice < dayRange*nearHighFraction)
	set.FarFromLow = contracts.Bool(position > farFromLowPosition)
}

// applyGap derives the open / previous-close comparisons. Each needs a
// positive reference price.
func (c *Calculator) applyGap(q contracts.Quote, set *contracts.IndicatorSet) {
	if q.PrevClose > 0 {
		set.AbovePrevClose = contracts.Bool(q.LastPrice > q.PrevClose)
	}
	if q.OpenPrice > 0 {
		set.AboveOpen = contracts.Bool(q.LastPrice > q.OpenPrice)
	}
}

func (c *Calculator) applyTrend(q contracts.Quote, h *contracts.HistorySeries, set *contracts.IndicatorSet) {
	closes := h.Closes()

	if ma, ok := SMA(closes, maShortWindow); ok {
		set.AboveMA5 = contracts.Bool(q.LastPrice > ma)
	}
	if ma, ok := SMA(closes, maMidWindow); ok {
		set.AboveMA10 = contracts.Bool(q.LastPrice > ma)
	}
	if ma, ok := SMA(closes, maLongWindow); ok {
		set.AboveMA20 = contracts.Bool(q.LastPrice > ma)
	}

	if up, ok := Uptrend(closes, trendWindow); ok {
		set.Uptrend5D = contracts.Bool(up)
	}

	if rsi, ok := RSI(closes, rsiPeriod); ok {
		set.RSI = contracts.Float(rsi)
		set.RSISafe = contracts.Bool(rsi > rsiSafeLow && rsi < rsiSafeHigh)
	}
}

func (c *Calculator) applySupportResistance(q contracts.Quote, h *contracts.HistorySeries, set *contracts.IndicatorSet) {
	support, ok := TrailingMin(h.Lows(), supportWindow)
	if !ok {
		return
	}
	resistance, _ := TrailingMax(h.Highs(), supportWindow)

	set.SupportLevel = contracts.Float(support)
	set.ResistanceLevel = contracts.Float(resistance)
	set.AboveSupport = contracts.Bool(q.LastPrice > support)
	if support > 0 {
		set.SupportDistancePct = contracts.Float((q.LastPrice - support) / support * 100)
	}
}

func (c *Calculator) applyVolume(q contracts.Quote, h *contracts.HistorySeries, set *contracts.IndicatorSet) {
	avg, ok := SMA(h.Volumes(), volumeAvgWindow)
	if !ok || avg <= 0 {
		return
	}

	ratio := q.Volume / avg
	set.VolumeRatio = contracts.Float(ratio)
	set.HighVolume = contracts.Bool(ratio > highVolumeRatio)
}
