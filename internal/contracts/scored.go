package contracts

import "time"

// SubScores is the per-bucket breakdown of a composite score. Each bucket is
// independently capped before summing.
type SubScores struct {
	Position      int `json:"position"`       // cap 30
	Trend         int `json:"trend"`          // cap 30
	SupportVolume int `json:"support_volume"` // cap 20
	Gain          int `json:"gain"`           // cap 20

	// Reasons records which rules fired, e.g. "Near day's high (+10)".
	Reasons []string `json:"reasons,omitempty"`
}

// ScoredCandidate is a quote plus its indicators plus the scoring verdict.
// Derived per run, never mutated after construction.
type ScoredCandidate struct {
	Quote      Quote        `json:"quote"`
	Indicators IndicatorSet `json:"indicators"`

	SubScores      SubScores `json:"sub_scores"`
	CompositeScore int       `json:"composite_score"` // 0-100
	Confidence     float64   `json:"confidence"`      // 50-95
	WillStayUp     bool      `json:"will_stay_up"`
}

// RiskLevel buckets confidence into a coarse label for the report.
func (c *ScoredCandidate) RiskLevel() string {
	switch {
	case c.Confidence > 80:
		return "LOW"
	case c.Confidence > 65:
		return "MEDIUM"
	default:
		return "HIGH"
	}
}

// Strengths lists the key positive factors behind the verdict.
func (c *ScoredCandidate) Strengths() []string {
	var out []string
	if BoolValue(c.Indicators.AboveSupport) {
		out = append(out, "Above Support")
	}
	if BoolValue(c.Indicators.AboveMA5) {
		out = append(out, "Above MA5")
	}
	if BoolValue(c.Indicators.AboveOpen) {
		out = append(out, "Above Open")
	}
	if BoolValue(c.Indicators.HighVolume) {
		out = append(out, "High Volume")
	}
	return out
}

// ScanResult is the output of one pipeline run: the full scored universe,
// the safe shortlist, and run metadata.
type ScanResult struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Source      string            `json:"source"`
	MarketOpen  bool              `json:"market_open"`
	Universe    []ScoredCandidate `json:"universe"` // all scored candidates, gain descending
	Picks       []ScoredCandidate `json:"picks"`    // the shortlist, at most 5
	Skipped     int               `json:"skipped"`  // quotes dropped at validation
	Fallback    bool              `json:"fallback"` // picks are top-by-confidence, not stay-up passers
}

// Count returns the number of scored candidates in the universe.
func (r *ScanResult) Count() int {
	return len(r.Universe)
}
