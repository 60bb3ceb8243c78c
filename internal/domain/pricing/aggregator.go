package pricing

import (
	"github.com/shopspring/decimal"

	"stayview/internal/domain/rates"
	"stayview/internal/domain/stay"
)

// Currency is the display-currency context applied to totals. A zero
// Multiplier means no conversion is pending and rates are shown as the
// raw USD-denominated amounts.
type Currency struct {
	Code       string
	Symbol     string
	Multiplier decimal.Decimal
}

// USD is the default display currency; rates arrive USD-denominated.
var USD = Currency{Code: "USD", Symbol: "$"}

// TotalFor sums the discounted nightly rates over the selected range and
// converts to the display currency, rounded half-up to two decimals. The
// summation is inclusive of both range ends: the check-out date's rate is
// counted even though it is not a night stayed. That matches what the
// widget displays and is kept deliberately distinct from the nights count
// used for stay-length rules (see stay.Nights vs stay.DaysThrough).
//
// Days missing from the catalog contribute zero rather than invalidating
// the total. The second return is false when either range end is unset or
// the catalog holds no data.
func TotalFor(r stay.Range, catalog *rates.Catalog, currency Currency) (decimal.Decimal, bool) {
	if !r.IsComplete() || !catalog.HasAny() {
		return decimal.Decimal{}, false
	}
	sum := decimal.Zero
	for _, day := range stay.DaysThrough(r.From, r.To) {
		rate, ok := catalog.Get(day)
		if !ok {
			continue
		}
		sum = sum.Add(rate.DiscountedRate)
	}
	if !currency.Multiplier.IsZero() {
		sum = sum.Mul(currency.Multiplier)
	}
	return sum.Round(2), true
}
