package contracts

import "context"

// SnapshotSource supplies the current top-gainer universe.
// Implementations live under internal/external; the pipeline only sees
// validated, normalized quotes.
type SnapshotSource interface {
	// Name identifies the feed in logs and scan results.
	Name() string

	// FetchSnapshot returns the current per-symbol records. An empty slice
	// with a nil error means the feed answered but had nothing to offer.
	FetchSnapshot(ctx context.Context) ([]Quote, error)
}

// HistorySource supplies recent daily bars per symbol on demand.
type HistorySource interface {
	// FetchHistory returns the recent daily series for a symbol. A nil
	// series or ErrDataUnavailable means "insufficient data": callers
	// degrade the indicator set and must not fail the candidate.
	FetchHistory(ctx context.Context, symbol string) (*HistorySeries, error)
}
