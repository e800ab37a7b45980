package selection

import (
	"sort"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/pkg/logger"
)

const (
	// MaxPicks bounds the shortlist.
	MaxPicks = 5

	// FallbackCount is how many top-confidence candidates stand in when
	// nothing passes the stay-up filter. The report is never silently
	// empty unless the universe itself was.
	FallbackCount = 3
)

// Selector ranks and filters the scored universe into the safe shortlist.
type Selector struct {
	logger *logger.Logger
}

// NewSelector creates a new candidate selector.
func NewSelector(log *logger.Logger) *Selector {
	return &Selector{logger: log}
}

// Select returns the ordered shortlist and whether the fallback was used.
// Ordering is (confidence, percent_change) descending; at most MaxPicks
// survive. An empty universe yields an empty shortlist.
func (s *Selector) Select(universe []contracts.ScoredCandidate) ([]contracts.ScoredCandidate, bool) {
	if len(universe) == 0 {
		return nil, false
	}

	picks := make([]contracts.ScoredCandidate, 0, len(universe))
	for _, c := range universe {
		if c.WillStayUp {
			picks = append(picks, c)
		}
	}

	fallback := false
	if len(picks) == 0 {
		// Nothing predicted to stay up: fall back to the most confident
		// candidates so the report still says something.
		fallback = true
		picks = topByConfidence(universe, FallbackCount)

		s.logger.WithField("count", len(picks)).
			Warn("No candidate predicted to stay up, using confidence fallback")
	}

	sortByConfidenceAndGain(picks)

	if len(picks) > MaxPicks {
		picks = picks[:MaxPicks]
	}

	s.logger.WithFields(map[string]interface{}{
		"universe": len(universe),
		"picks":    len(picks),
		"fallback": fallback,
	}).Info("Selection completed")

	return picks, fallback
}

// topByConfidence returns the n most confident candidates.
func topByConfidence(universe []contracts.ScoredCandidate, n int) []contracts.ScoredCandidate {
	sorted := make([]contracts.ScoredCandidate, len(universe))
	copy(sorted, universe)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// sortByConfidenceAndGain orders descending by confidence, breaking ties by
// raw gain percentage, also descending.
func sortByConfidenceAndGain(candidates []contracts.ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].Quote.PercentChange > candidates[j].Quote.PercentChange
	})
}
