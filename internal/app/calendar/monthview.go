package calendar

import (
	"time"

	"stayview/internal/domain/rates"
	"stayview/internal/domain/stay"
)

// DayCell is the per-date presentation data for one calendar cell. The
// price labels (strike-through base rate on promotion days and so on) are
// a rendering concern; the cell carries the raw rate fields.
type DayCell struct {
	Date      time.Time
	Available bool
	Disabled  bool
	Selected  bool
	Rate      rates.DailyRate
}

// horizonDays caps how far ahead the widget lets users browse.
const horizonDays = 365

// MonthView lists a cell for every day of the given month. A day is
// disabled when the selection policy forbids it, when it has no rate in a
// loaded catalog, or when it lies beyond the booking horizon.
func (c *Controller) MonthView(month time.Time) []DayCell {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := stay.Day(c.now())
	horizon := today.AddDate(0, 0, horizonDays)
	first := stay.MonthStart(month)
	next := first.AddDate(0, 1, 0)

	cells := make([]DayCell, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		rate, available := c.catalog.Get(d)
		disabled := stay.IsDisabled(d, today, c.selected, c.policy)
		if c.catalog.HasAny() && !available {
			disabled = true
		}
		if d.After(horizon) {
			disabled = true
		}
		cells = append(cells, DayCell{
			Date:      d,
			Available: available,
			Disabled:  disabled,
			Selected:  c.isSelectedLocked(d),
			Rate:      rate,
		})
	}
	return cells
}

func (c *Controller) isSelectedLocked(d time.Time) bool {
	switch c.selected.State() {
	case stay.StateAnchored:
		return stay.SameDay(d, c.selected.From)
	case stay.StateComplete:
		return !d.Before(c.selected.From) && !d.After(c.selected.To)
	default:
		return false
	}
}
