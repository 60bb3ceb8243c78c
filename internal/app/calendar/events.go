package calendar

import (
	"context"
	"log/slog"
	"time"

	"stayview/internal/domain/stay"
)

type EventKind string

const (
	EventRangeSelected EventKind = "range_selected"
	EventQuoteComputed EventKind = "quote_computed"
)

// Event is a widget analytics record emitted when a user lands on a valid
// range. Delivery is best-effort: a broker failure never disturbs the
// selection state.
type Event struct {
	Kind       EventKind `json:"kind"`
	SessionID  string    `json:"session_id"`
	TenantID   int64     `json:"tenant_id"`
	PropertyID int64     `json:"property_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Nights     int       `json:"nights"`
	Total      string    `json:"total,omitempty"`
	Currency   string    `json:"currency,omitempty"`
	At         time.Time `json:"at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

func (c *Controller) publishSelection(ctx context.Context, state State) {
	if c.events == nil {
		return
	}
	base := Event{
		SessionID:  c.sessionID,
		TenantID:   c.tenantID,
		PropertyID: state.PropertyID,
		CheckIn:    stay.FormatDay(state.Selected.From),
		CheckOut:   stay.FormatDay(state.Selected.To),
		Nights:     state.Selected.Nights(),
		At:         c.now().UTC(),
	}

	selected := base
	selected.Kind = EventRangeSelected
	if err := c.events.Publish(ctx, selected); err != nil {
		c.log(slog.LevelWarn, "event publish failed", "kind", EventRangeSelected, "error", err)
	}

	if !state.HasTotal {
		return
	}
	quote := base
	quote.Kind = EventQuoteComputed
	quote.Total = state.TotalPrice.StringFixed(2)
	quote.Currency = state.Currency.Code
	if err := c.events.Publish(ctx, quote); err != nil {
		c.log(slog.LevelWarn, "event publish failed", "kind", EventQuoteComputed, "error", err)
	}
}
