package contracts

import (
	"errors"
	"fmt"
)

// ErrEmptyUniverse is returned when the snapshot source produced no
// candidates at all. This is a terminal, user-visible condition: without a
// universe there is nothing to score.
var ErrEmptyUniverse = errors.New("snapshot source returned no candidates")

// ErrDataUnavailable marks a failed or insufficient history fetch. The
// pipeline treats it as "history unavailable" and degrades the indicator
// set; it never aborts a candidate.
var ErrDataUnavailable = errors.New("historical data unavailable")

// ValidationError reports a quote that fails structural invariants
// (empty symbol, non-positive previous close). Such records are excluded
// from scoring and logged as skipped; they do not abort the run.
type ValidationError struct {
	Symbol string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("invalid quote: %s", e.Reason)
	}
	return fmt.Sprintf("invalid quote %s: %s", e.Symbol, e.Reason)
}

// IsValidationError reports whether err is a quote validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
