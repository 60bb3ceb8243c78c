package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stayview/internal/app/calendar"
	"stayview/internal/domain/stay"
	"stayview/internal/domain/tenant"
	"stayview/internal/infra/currency"
)

var ErrCurrencyNotOffered = errors.New("sessions: currency not offered by tenant")

// Session binds one widget visitor to their tenant configuration,
// calendar controller and display currency.
type Session struct {
	ID        string
	Tenant    *tenant.Config
	Calendar  *calendar.Controller
	Currency  *currency.Holder
	CreatedAt time.Time
}

// Store persists live sessions.
type Store interface {
	Put(session *Session)
	Get(id string) (*Session, error)
}

// Service creates widget sessions and routes widget actions to the
// session's calendar controller.
type Service struct {
	Tenants   tenant.Repository
	Store     Store
	Fetcher   calendar.RatesFetcher
	Events    calendar.EventPublisher
	Converter *currency.Converter
	Logger    *slog.Logger
	Now       func() time.Time
}

// Create loads the tenant's configuration and starts an empty session.
// The visitor's locale (an Accept-Language header or a bare tag) picks
// the initial display currency when the tenant offers it; anything else
// starts in USD.
func (s *Service) Create(ctx context.Context, tenantID int64, locale string) (*Session, error) {
	cfg, err := s.Tenants.Config(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sessions: tenant %d: %w", tenantID, err)
	}

	id := uuid.NewString()
	holder := currency.NewHolder(s.Converter)
	if code, _ := currency.ByLocale(locale); code != "USD" {
		if opt, ok := cfg.Currency(code); ok {
			if err := holder.Switch(ctx, opt.Code, opt.Symbol); err != nil && s.Logger != nil {
				s.Logger.Warn("locale currency without rate", "session_id", id, "locale", locale, "code", code, "error", err)
			}
		}
	}
	controller, err := calendar.New(calendar.Config{
		SessionID: id,
		TenantID:  tenantID,
		Policy:    cfg.Stay,
		Fetcher:   s.Fetcher,
		Currency:  holder,
		Events:    s.Events,
		Logger:    s.Logger,
		Now:       s.Now,
	})
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        id,
		Tenant:    cfg,
		Calendar:  controller,
		Currency:  holder,
		CreatedAt: s.now(),
	}
	s.Store.Put(session)
	return session, nil
}

// Get returns a live session by id.
func (s *Service) Get(id string) (*Session, error) {
	return s.Store.Get(id)
}

// SetProperty switches the session's active property and triggers the
// rates fetch.
func (s *Service) SetProperty(ctx context.Context, id string, propertyID int64) error {
	session, err := s.Store.Get(id)
	if err != nil {
		return err
	}
	session.Calendar.SetActiveProperty(ctx, propertyID)
	return nil
}

// SelectDate advances the session's range selection.
func (s *Service) SelectDate(ctx context.Context, id string, date string) error {
	session, err := s.Store.Get(id)
	if err != nil {
		return err
	}
	day, err := stay.ParseDay(date)
	if err != nil {
		return err
	}
	session.Calendar.SelectDate(ctx, day)
	return nil
}

// ChangeMonth moves the displayed month.
func (s *Service) ChangeMonth(id string, delta int) error {
	session, err := s.Store.Get(id)
	if err != nil {
		return err
	}
	session.Calendar.ChangeMonth(delta)
	return nil
}

// SwitchCurrency changes the display currency to one of the tenant's
// active options and refreshes the total with the new multiplier. A
// failed exchange-rate lookup still switches the currency; the total
// keeps the raw USD amounts until a rate arrives.
func (s *Service) SwitchCurrency(ctx context.Context, id string, code string) error {
	session, err := s.Store.Get(id)
	if err != nil {
		return err
	}
	opt, ok := session.Tenant.Currency(code)
	if !ok {
		return ErrCurrencyNotOffered
	}
	if err := session.Currency.Switch(ctx, opt.Code, opt.Symbol); err != nil {
		if s.Logger != nil {
			s.Logger.Warn("currency switch without rate", "session_id", id, "code", code, "error", err)
		}
	}
	session.Calendar.RefreshTotal()
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
