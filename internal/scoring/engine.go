package scoring

import (
	"fmt"
	"math"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/pkg/logger"
)

// Fixed policy constants for the stay-up score. These are not tunable
// inputs: downstream consumers rely on output parity across runs.
const (
	positionCap   = 30
	trendCap      = 30
	supportVolCap = 20
	gainCap       = 20

	positionTierHigh = 80.0 // > 80 in range
	positionTierMid  = 60.0
	positionTierLow  = 40.0

	positionTierHighPts = 15
	positionTierMidPts  = 10
	positionTierLowPts  = 5
	nearHighPts         = 10
	farFromLowPts       = 5

	aboveMAPts = 5
	uptrendPts = 10
	rsiSafePts = 5

	aboveSupportPts   = 10
	highVolumePts     = 5
	aboveOpenPts      = 3
	abovePrevClosePts = 2

	moderateGainMin = 2.0
	moderateGainMax = 8.0
	moderateGainPts = 15
	extremeGainPts  = 5 // gains past 8% carry profit-booking risk
	smallGainPts    = 10

	confidenceFloor = 50.0
	confidenceCeil  = 95.0
	confidenceSlope = 0.45

	verdictMinScore    = 60
	verdictMinPosition = 50.0
)

// Engine converts an indicator set into the composite score, confidence and
// stay-up verdict.
type Engine struct {
	logger *logger.Logger
}

// NewEngine creates a new scoring engine.
func NewEngine(log *logger.Logger) *Engine {
	return &Engine{logger: log}
}

// Score produces the scored candidate for one quote. Absent indicators
// contribute nothing; they never count as true.
func (e *Engine) Score(quote contracts.Quote, set contracts.IndicatorSet) contracts.ScoredCandidate {
	var reasons []string

	position := e.positionScore(set, &reasons)
	trend := e.trendScore(set, &reasons)
	supportVol := e.supportVolumeScore(set, &reasons)
	gain := e.gainScore(quote.PercentChange, &reasons)

	composite := position + trend + supportVol + gain
	confidence := math.Min(confidenceCeil, confidenceFloor+float64(composite)*confidenceSlope)

	posInRange, _ := contracts.FloatValue(set.PositionInRange)
	willStayUp := composite >= verdictMinScore &&
		contracts.BoolValue(set.AboveSupport) &&
		posInRange > verdictMinPosition

	candidate := contracts.ScoredCandidate{
		Quote:      quote,
		Indicators: set,
		SubScores: contracts.SubScores{
			Position:      position,
			Trend:         trend,
			SupportVolume: supportVol,
			Gain:          gain,
			Reasons:       reasons,
		},
		CompositeScore: composite,
		Confidence:     confidence,
		WillStayUp:     willStayUp,
	}

	e.logger.WithFields(map[string]interface{}{
		"symbol":     quote.Symbol,
		"score":      composite,
		"confidence": confidence,
		"stay_up":    willStayUp,
	}).Debug("Candidate scored")

	return candidate
}

// positionScore scores where the price sits in the day's range, capped at 30.
// The range tiers are exclusive: only the highest applicable tier counts.
func (e *Engine) positionScore(set contracts.IndicatorSet, reasons *[]string) int {
	score := 0

	if pos, ok := contracts.FloatValue(set.PositionInRange); ok {
		switch {
		case pos > positionTierHigh:
			score += positionTierHighPts
			*reasons = append(*reasons, fmt.Sprintf("Very high in range (+%d)", positionTierHighPts))
		case pos > positionTierMid:
			score += positionTierMidPts
			*reasons = append(*reasons, fmt.Sprintf("High in range (+%d)", positionTierMidPts))
		case pos > positionTierLow:
			score += positionTierLowPts
			*reasons = append(*reasons, fmt.Sprintf("Mid-range (+%d)", positionTierLowPts))
		}
	}

	if contracts.BoolValue(set.NearHigh) {
		score += nearHighPts
		*reasons = append(*reasons, fmt.Sprintf("Near day's high (+%d)", nearHighPts))
	}
	if contracts.BoolValue(set.FarFromLow) {
		score += farFromLowPts
		*reasons = append(*reasons, fmt.Sprintf("Far from low (+%d)", farFromLowPts))
	}

	return capScore(score, positionCap)
}

// trendScore scores the moving-average stack, 5-day trend and RSI health,
// capped at 30.
func (e *Engine) trendScore(set contracts.IndicatorSet, reasons *[]string) int {
	score := 0

	if contracts.BoolValue(set.AboveMA5) {
		score += aboveMAPts
		*reasons = append(*reasons, fmt.Sprintf("Above MA5 (+%d)", aboveMAPts))
	}
	if contracts.BoolValue(set.AboveMA10) {
		score += aboveMAPts
		*reasons = append(*reasons, fmt.Sprintf("Above MA10 (+%d)", aboveMAPts))
	}
	if contracts.BoolValue(set.AboveMA20) {
		score += aboveMAPts
		*reasons = append(*reasons, fmt.Sprintf("Above MA20 (+%d)", aboveMAPts))
	}
	if contracts.BoolValue(set.Uptrend5D) {
		score += uptrendPts
		*reasons = append(*reasons, fmt.Sprintf("5-day uptrend (+%d)", uptrendPts))
	}
	if contracts.BoolValue(set.RSISafe) {
		score += rsiSafePts
		*reasons = append(*reasons, fmt.Sprintf("Safe RSI (+%d)", rsiSafePts))
	}

	return capScore(score, trendCap)
}

// supportVolumeScore scores support hold, volume strength and the intraday
// gap checks, capped at 20.
func (e *Engine) supportVolumeScore(set contracts.IndicatorSet, reasons *[]string) int {
	score := 0

	if contracts.BoolValue(set.AboveSupport) {
		score += aboveSupportPts
		*reasons = append(*reasons, fmt.Sprintf("Above support (+%d)", aboveSupportPts))
	}
	if contracts.BoolValue(set.HighVolume) {
		score += highVolumePts
		*reasons = append(*reasons, fmt.Sprintf("High volume (+%d)", highVolumePts))
	}
	if contracts.BoolValue(set.AboveOpen) {
		score += aboveOpenPts
		*reasons = append(*reasons, fmt.Sprintf("Above open (+%d)", aboveOpenPts))
	}
	if contracts.BoolValue(set.AbovePrevClose) {
		score += abovePrevClosePts
		*reasons = append(*reasons, fmt.Sprintf("Above prev close (+%d)", abovePrevClosePts))
	}

	return capScore(score, supportVolCap)
}

// gainScore scores the day's gain itself, capped at 20. Moderate gains are
// preferred; extreme gains score low because they invite profit booking.
func (e *Engine) gainScore(percentChange float64, reasons *[]string) int {
	score := 0

	switch {
	case percentChange >= moderateGainMin && percentChange <= moderateGainMax:
		score = moderateGainPts
		*reasons = append(*reasons, fmt.Sprintf("Moderate gain %.1f%% (+%d)", percentChange, moderateGainPts))
	case percentChange > moderateGainMax:
		score = extremeGainPts
		*reasons = append(*reasons, fmt.Sprintf("High gain %.1f%% (+%d)", percentChange, extremeGainPts))
	case percentChange > 0:
		score = smallGainPts
		*reasons = append(*reasons, fmt.Sprintf("Small gain %.1f%% (+%d)", percentChange, smallGainPts))
	}

	return capScore(score, gainCap)
}

func capScore(score, limit int) int {
	if score > limit {
		return limit
	}
	return score
}
