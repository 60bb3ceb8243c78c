package rates

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"stayview/internal/domain/stay"
)

var (
	ErrNegativeRate       = errors.New("rates: nightly rate cannot be negative")
	ErrInvalidFactor      = errors.New("rates: price factor must be in [0,1)")
	ErrFactorWithoutPromo = errors.New("rates: price factor requires an active promotion")
)

var one = decimal.NewFromInt(1)

// DailyRate is one calendar day's pricing for one property. Immutable
// after construction; a property's rates are replaced wholesale on fetch.
type DailyRate struct {
	Date           time.Time
	BaseRate       decimal.Decimal
	HasPromotion   bool
	DiscountFactor decimal.Decimal
	DiscountedRate decimal.Decimal
}

// NewDailyRate validates the inputs and derives the discounted rate as
// base * (1 - factor). Without a promotion the factor must be zero, so the
// discounted rate equals the base rate.
func NewDailyRate(date time.Time, base decimal.Decimal, hasPromotion bool, factor decimal.Decimal) (DailyRate, error) {
	if base.IsNegative() {
		return DailyRate{}, ErrNegativeRate
	}
	if factor.IsNegative() || factor.GreaterThanOrEqual(one) {
		return DailyRate{}, ErrInvalidFactor
	}
	if !hasPromotion && !factor.IsZero() {
		return DailyRate{}, ErrFactorWithoutPromo
	}
	return DailyRate{
		Date:           stay.Day(date),
		BaseRate:       base,
		HasPromotion:   hasPromotion,
		DiscountFactor: factor,
		DiscountedRate: base.Mul(one.Sub(factor)),
	}, nil
}

// Catalog holds the known daily rates of a single property, at most one
// per date. A date missing from the catalog means unavailable; lookups
// never fail. Replacement is wholesale via NewCatalog, there is no
// per-entry mutation.
type Catalog struct {
	byDay map[string]DailyRate
	dates []time.Time
}

// NewCatalog indexes a fetched batch of daily rates. Duplicate dates keep
// the last record seen.
func NewCatalog(records []DailyRate) *Catalog {
	c := &Catalog{byDay: make(map[string]DailyRate, len(records))}
	for _, r := range records {
		key := stay.FormatDay(r.Date)
		if _, seen := c.byDay[key]; !seen {
			c.dates = append(c.dates, stay.Day(r.Date))
		}
		c.byDay[key] = r
	}
	sort.Slice(c.dates, func(i, j int) bool { return c.dates[i].Before(c.dates[j]) })
	return c
}

// Get returns the rate for a date, or false when the date is unknown.
func (c *Catalog) Get(date time.Time) (DailyRate, bool) {
	if c == nil {
		return DailyRate{}, false
	}
	r, ok := c.byDay[stay.FormatDay(date)]
	return r, ok
}

// HasAny reports whether the catalog holds any rates at all.
func (c *Catalog) HasAny() bool {
	return c != nil && len(c.dates) > 0
}

// Len returns the number of distinct dates in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.dates)
}

// AllDates lists the known dates in ascending order.
func (c *Catalog) AllDates() []time.Time {
	if c == nil {
		return nil
	}
	return append([]time.Time(nil), c.dates...)
}
