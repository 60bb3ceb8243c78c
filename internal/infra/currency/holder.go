package currency

import (
	"context"
	"sync"

	"stayview/internal/domain/pricing"
)

// Holder keeps a session's display currency and its USD multiplier. It
// implements calendar.CurrencyProvider; the controller reads Current on
// every total computation, so an asynchronously refreshed multiplier is
// applied on the next recompute without any extra plumbing.
type Holder struct {
	converter *Converter

	mu      sync.RWMutex
	current pricing.Currency
}

// NewHolder starts a session in USD with no conversion pending.
func NewHolder(converter *Converter) *Holder {
	return &Holder{converter: converter, current: pricing.USD}
}

// Current returns the latest display currency.
func (h *Holder) Current() pricing.Currency {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Switch changes the display currency and resolves its USD multiplier.
// USD clears the multiplier. For any other code the multiplier stays
// unset when no rate can be obtained, so totals fall back to the raw
// USD amounts until a later switch succeeds.
func (h *Holder) Switch(ctx context.Context, code, symbol string) error {
	next := pricing.Currency{Code: code, Symbol: symbol}
	if code != pricing.USD.Code && h.converter != nil {
		rate, err := h.converter.Rate(ctx, pricing.USD.Code, code)
		if err == nil {
			next.Multiplier = rate
		} else {
			h.set(next)
			return err
		}
	}
	h.set(next)
	return nil
}

func (h *Holder) set(c pricing.Currency) {
	h.mu.Lock()
	h.current = c
	h.mu.Unlock()
}
