package stay

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("stay: check-out must not precede check-in")

// SelectionState describes where a range selection is in its lifecycle.
type SelectionState string

const (
	// StateEmpty means nothing is selected yet. For rendering it behaves
	// as a completed (settled) state.
	StateEmpty SelectionState = "EMPTY"
	// StateAnchored means check-in is chosen and check-out is pending.
	StateAnchored SelectionState = "ANCHORED"
	// StateComplete means both ends are chosen.
	StateComplete SelectionState = "COMPLETE"
)

// Range is an in-progress or completed date-range selection. A zero From
// means no selection; To can only be set when From is set.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange builds a completed range, rejecting inverted bounds.
func NewRange(from, to time.Time) (Range, error) {
	r := Range{From: Day(from), To: Day(to)}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Anchored builds a range with only the check-in end set.
func Anchored(from time.Time) Range {
	return Range{From: Day(from)}
}

func (r Range) Validate() error {
	if !r.To.IsZero() && r.From.IsZero() {
		return ErrInvalidRange
	}
	if !r.To.IsZero() && r.To.Before(r.From) {
		return ErrInvalidRange
	}
	return nil
}

// State classifies the selection: EMPTY, ANCHORED or COMPLETE.
func (r Range) State() SelectionState {
	switch {
	case r.From.IsZero():
		return StateEmpty
	case r.To.IsZero():
		return StateAnchored
	default:
		return StateComplete
	}
}

// IsEmpty reports whether nothing is selected.
func (r Range) IsEmpty() bool { return r.From.IsZero() }

// IsComplete reports whether both ends are selected.
func (r Range) IsComplete() bool { return !r.From.IsZero() && !r.To.IsZero() }

// Nights returns the stay length in nights for a complete range, zero
// otherwise.
func (r Range) Nights() int {
	if !r.IsComplete() {
		return 0
	}
	return Nights(r.From, r.To)
}
