package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"stayview/internal/domain/pricing"
	"stayview/internal/domain/rates"
	"stayview/internal/domain/stay"
)

var ErrFetcherMissing = errors.New("calendar: rates fetcher not configured")

// RatesFetcher is the outbound collaborator supplying a property's daily
// rates.
type RatesFetcher interface {
	DailyRates(ctx context.Context, tenantID, propertyID int64) ([]rates.DailyRate, error)
}

// CurrencyProvider supplies the current display currency. The controller
// reads it fresh on every total computation so a late-arriving exchange
// rate is picked up on the next recompute.
type CurrencyProvider interface {
	Current() pricing.Currency
}

// State is a rendering snapshot of the controller. Mutation happens only
// through the controller's methods; the snapshot is a copy.
type State struct {
	PropertyID        int64
	Selected          stay.Range
	SelectionState    stay.SelectionState
	DisplayedMonth    time.Time
	IsLoading         bool
	ValidationMessage string
	TotalPrice        decimal.Decimal
	HasTotal          bool
	Currency          pricing.Currency
}

// Config wires a controller for one widget session.
type Config struct {
	SessionID string
	TenantID  int64
	Policy    stay.Policy
	Fetcher   RatesFetcher
	Currency  CurrencyProvider
	Events    EventPublisher
	Logger    *slog.Logger
	Now       func() time.Time
}

// Controller owns the selection state machine and the rate catalog for
// the session's active property. All mutators are safe for concurrent
// use; each one sees a fully replaced catalog, never a partial load.
type Controller struct {
	sessionID string
	tenantID  int64
	policy    stay.Policy
	fetcher   RatesFetcher
	currency  CurrencyProvider
	events    EventPublisher
	logger    *slog.Logger
	now       func() time.Time

	mu             sync.Mutex
	propertyID     int64
	generation     uint64
	catalog        *rates.Catalog
	selected       stay.Range
	displayedMonth time.Time
	validationMsg  string
	loading        bool
	total          decimal.Decimal
	hasTotal       bool
}

func New(cfg Config) (*Controller, error) {
	if err := cfg.Policy.Validate(); err != nil {
		return nil, err
	}
	if cfg.Fetcher == nil {
		return nil, ErrFetcherMissing
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		sessionID:      cfg.SessionID,
		tenantID:       cfg.TenantID,
		policy:         cfg.Policy,
		fetcher:        cfg.Fetcher,
		currency:       cfg.Currency,
		events:         cfg.Events,
		logger:         cfg.Logger,
		now:            now,
		displayedMonth: stay.MonthStart(now()),
	}, nil
}

// Snapshot returns a copy of the observable state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		PropertyID:        c.propertyID,
		Selected:          c.selected,
		SelectionState:    c.selected.State(),
		DisplayedMonth:    c.displayedMonth,
		IsLoading:         c.loading,
		ValidationMessage: c.validationMsg,
		TotalPrice:        c.total,
		HasTotal:          c.hasTotal,
		Currency:          c.currentCurrency(),
	}
}

// Rate exposes the raw daily rate for a date, for per-date presentation.
func (c *Controller) Rate(date time.Time) (rates.DailyRate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Get(date)
}

// SetActiveProperty switches the session to another property. The
// selection and catalog are cleared synchronously and a fetch is issued;
// a response belonging to a superseded fetch is discarded by generation
// number, so rapid switching never applies stale rates.
func (c *Controller) SetActiveProperty(ctx context.Context, propertyID int64) {
	c.mu.Lock()
	c.propertyID = propertyID
	c.generation++
	gen := c.generation
	c.catalog = nil
	c.selected = stay.Range{}
	c.validationMsg = ""
	c.total = decimal.Decimal{}
	c.hasTotal = false
	c.loading = true
	c.mu.Unlock()

	// The fetch outlives the triggering request; keep its values (request
	// id) but not its cancellation.
	go c.fetch(context.WithoutCancel(ctx), gen, propertyID)
}

func (c *Controller) fetch(ctx context.Context, gen uint64, propertyID int64) {
	records, err := c.fetcher.DailyRates(ctx, c.tenantID, propertyID)
	if err != nil {
		c.finishFetch(gen, propertyID, nil, err)
		return
	}
	c.finishFetch(gen, propertyID, rates.NewCatalog(records), nil)
}

func (c *Controller) finishFetch(gen uint64, propertyID int64, catalog *rates.Catalog, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.log(slog.LevelDebug, "stale rates response discarded", "property_id", propertyID, "generation", gen)
		return
	}
	c.loading = false
	if err != nil {
		c.validationMsg = err.Error()
		c.log(slog.LevelWarn, "rates fetch failed", "property_id", propertyID, "error", err)
		return
	}
	c.catalog = catalog
	c.log(slog.LevelInfo, "rates loaded", "property_id", propertyID, "dates", catalog.Len())
}

// SelectDate runs one step of the selection machine. Days before today
// are ignored outright. Completing a range that violates the stay bounds
// keeps the anchor and surfaces a validation message; completing a valid
// range stores it, clears the message and recomputes the total.
func (c *Controller) SelectDate(ctx context.Context, candidate time.Time) {
	candidate = stay.Day(candidate)

	c.mu.Lock()
	if candidate.Before(stay.Day(c.now())) {
		c.mu.Unlock()
		return
	}
	if c.catalog.HasAny() {
		if _, ok := c.catalog.Get(candidate); !ok {
			c.validationMsg = "Selected date is not available"
			c.mu.Unlock()
			return
		}
	}

	next := stay.CommitSelect(candidate, c.selected)
	if !next.IsComplete() {
		c.selected = next
		c.validationMsg = ""
		c.total = decimal.Decimal{}
		c.hasTotal = false
		c.mu.Unlock()
		return
	}

	if err := stay.ValidateRange(next, c.policy); err != nil {
		c.validationMsg = c.boundsMessage(err)
		c.mu.Unlock()
		return
	}

	c.selected = next
	c.validationMsg = ""
	c.recomputeTotalLocked()
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.publishSelection(ctx, state)
}

func (c *Controller) boundsMessage(err error) string {
	switch {
	case errors.Is(err, stay.ErrStayTooShort):
		return fmt.Sprintf("Minimum stay duration is %d days", c.policy.MinNights)
	case errors.Is(err, stay.ErrStayTooLong):
		return fmt.Sprintf("Maximum stay duration is %d days", c.policy.MaxNights)
	default:
		return err.Error()
	}
}

// ChangeMonth moves the displayed month by delta whole months without
// touching the selection.
func (c *Controller) ChangeMonth(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.displayedMonth = stay.MonthStart(c.displayedMonth.AddDate(0, delta, 0))
}

// RefreshTotal recomputes the total against the latest display currency.
// Called after a currency switch or an exchange-rate update.
func (c *Controller) RefreshTotal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recomputeTotalLocked()
}

func (c *Controller) recomputeTotalLocked() {
	total, ok := pricing.TotalFor(c.selected, c.catalog, c.currentCurrency())
	c.total = total
	c.hasTotal = ok
}

func (c *Controller) currentCurrency() pricing.Currency {
	if c.currency == nil {
		return pricing.USD
	}
	return c.currency.Current()
}

func (c *Controller) snapshotLocked() State {
	return State{
		PropertyID:        c.propertyID,
		Selected:          c.selected,
		SelectionState:    c.selected.State(),
		DisplayedMonth:    c.displayedMonth,
		IsLoading:         c.loading,
		ValidationMessage: c.validationMsg,
		TotalPrice:        c.total,
		HasTotal:          c.hasTotal,
		Currency:          c.currentCurrency(),
	}
}

func (c *Controller) log(level slog.Level, msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Log(context.Background(), level, msg, append([]any{"session_id", c.sessionID, "tenant_id", c.tenantID}, args...)...)
}
