// Package pipeline runs a full gainer scan: snapshot, per-symbol history,
// indicators, scoring, and the final shortlist.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/internal/indicator"
	"github.com/quantnse/stayup/internal/marketclock"
	"github.com/quantnse/stayup/internal/scoring"
	"github.com/quantnse/stayup/internal/selection"
	"github.com/quantnse/stayup/pkg/logger"
)

// Pipeline wires the scan stages together.
type Pipeline struct {
	snapshots  contracts.SnapshotSource
	history    contracts.HistorySource
	calculator *indicator.Calculator
	engine     *scoring.Engine
	selector   *selection.Selector
	logger     *logger.Logger

	universeLimit int
}

// New creates a scan pipeline over the given sources.
func New(
	snapshots contracts.SnapshotSource,
	history contracts.HistorySource,
	log *logger.Logger,
	universeLimit int,
) *Pipeline {
	return &Pipeline{
		snapshots:     snapshots,
		history:       history,
		calculator:    indicator.NewCalculator(),
		engine:        scoring.NewEngine(log),
		selector:      selection.NewSelector(log),
		logger:        log,
		universeLimit: universeLimit,
	}
}

// Run executes one complete scan. A symbol whose history lookup fails is
// scored from the quote alone; only an empty snapshot is fatal.
func (p *Pipeline) Run(ctx context.Context) (*contracts.ScanResult, error) {
	started := time.Now()

	quotes, err := p.snapshots.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot fetch failed: %w", err)
	}

	universe, skipped := p.filterUniverse(quotes)
	if len(universe) == 0 {
		return nil, contracts.ErrEmptyUniverse
	}

	p.logger.WithFields(map[string]interface{}{
		"source":   p.snapshots.Name(),
		"universe": len(universe),
		"skipped":  skipped,
	}).Info("Scanning top gainers")

	scored := make([]contracts.ScoredCandidate, 0, len(universe))
	for _, quote := range universe {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		candidate, err := p.analyze(ctx, quote)
		if err != nil {
			p.logger.WithError(err).WithField("symbol", quote.Symbol).
				Warn("Skipping candidate")
			skipped++
			continue
		}

		scored = append(scored, candidate)
	}

	if len(scored) == 0 {
		return nil, contracts.ErrEmptyUniverse
	}

	picks, fallback := p.selector.Select(scored)

	result := &contracts.ScanResult{
		GeneratedAt: started,
		Source:      p.snapshots.Name(),
		MarketOpen:  marketclock.IsOpen(started),
		Universe:    scored,
		Picks:       picks,
		Skipped:     skipped,
		Fallback:    fallback,
	}

	p.logger.WithFields(map[string]interface{}{
		"analyzed": len(scored),
		"picks":    len(picks),
		"elapsed":  time.Since(started).String(),
	}).Info("Scan completed")

	return result, nil
}

// filterUniverse keeps valid, positively moving quotes, orders them by
// gain descending, and truncates to the configured limit.
func (p *Pipeline) filterUniverse(quotes []contracts.Quote) ([]contracts.Quote, int) {
	skipped := 0
	universe := make([]contracts.Quote, 0, len(quotes))

	for _, q := range quotes {
		q.Normalize()
		if err := q.Validate(); err != nil {
			p.logger.WithError(err).Debug("Dropping invalid quote")
			skipped++
			continue
		}
		if q.PercentChange <= 0 {
			skipped++
			continue
		}
		universe = append(universe, q)
	}

	sort.SliceStable(universe, func(i, j int) bool {
		return universe[i].PercentChange > universe[j].PercentChange
	})

	if p.universeLimit > 0 && len(universe) > p.universeLimit {
		universe = universe[:p.universeLimit]
	}

	return universe, skipped
}

// analyze scores one candidate. History failures degrade to quote-only
// indicators instead of dropping the symbol.
func (p *Pipeline) analyze(ctx context.Context, quote contracts.Quote) (contracts.ScoredCandidate, error) {
	history, err := p.history.FetchHistory(ctx, quote.Symbol)
	if err != nil {
		p.logger.WithError(err).WithField("symbol", quote.Symbol).
			Debug("History unavailable, scoring from quote only")
		history = nil
	}

	set, err := p.calculator.Calculate(quote, history)
	if err != nil {
		return contracts.ScoredCandidate{}, fmt.Errorf("indicator calculation failed: %w", err)
	}

	return p.engine.Score(quote, set), nil
}
