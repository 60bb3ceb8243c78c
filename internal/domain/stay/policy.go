package stay

import (
	"errors"
	"time"
)

var (
	ErrStayTooShort  = errors.New("stay: range shorter than minimum stay")
	ErrStayTooLong   = errors.New("stay: range longer than maximum stay")
	ErrInvalidPolicy = errors.New("stay: invalid length-of-stay bounds")
)

// Policy carries a tenant's length-of-stay bounds, in nights.
type Policy struct {
	MinNights int
	MaxNights int
}

func (p Policy) Validate() error {
	if p.MinNights < 1 || p.MaxNights < p.MinNights {
		return ErrInvalidPolicy
	}
	return nil
}

// IsDisabled decides whether candidate may be clicked given today's date
// and the selection in progress. Days strictly before today are always
// disabled. While a selection is anchored, forward-looking days past the
// maximum stay or short of the minimum-stay boundary are disabled; the
// exact minimum boundary day (from + minNights - 1) stays clickable.
// Days before the anchor are left enabled so the user can re-anchor.
func IsDisabled(candidate, today time.Time, inProgress Range, p Policy) bool {
	candidate, today = Day(candidate), Day(today)
	if candidate.Before(today) {
		return true
	}
	if inProgress.State() != StateAnchored || candidate.Before(inProgress.From) {
		return false
	}
	nights := Nights(inProgress.From, candidate)
	if nights > p.MaxNights {
		return true
	}
	if nights < p.MinNights-1 {
		return true
	}
	return false
}

// ValidateRange checks a completed range against the policy. Stay length
// is counted in nights (check-out minus check-in), not occupied dates.
func ValidateRange(r Range, p Policy) error {
	if !r.IsComplete() {
		return ErrInvalidRange
	}
	nights := r.Nights()
	if nights < p.MinNights {
		return ErrStayTooShort
	}
	if nights > p.MaxNights {
		return ErrStayTooLong
	}
	return nil
}

// CommitSelect advances the selection with a clicked day. A click on an
// empty or complete selection starts over with the candidate as the new
// anchor; so does a click strictly before the current anchor (re-anchoring
// instead of silently swapping which end is check-in). A click at or after
// the anchor proposes a completed range; whether that range sticks is the
// caller's decision after ValidateRange.
func CommitSelect(candidate time.Time, inProgress Range) Range {
	candidate = Day(candidate)
	if inProgress.State() != StateAnchored || candidate.Before(inProgress.From) {
		return Anchored(candidate)
	}
	return Range{From: inProgress.From, To: candidate}
}
