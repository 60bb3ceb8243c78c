package tenant

import (
	"context"
	"errors"

	"stayview/internal/domain/stay"
)

var ErrNotFound = errors.New("tenant: configuration not found")

// CurrencyOption is one currency a tenant offers in the switcher.
type CurrencyOption struct {
	Code   string
	Name   string
	Symbol string
	Active bool
}

// LanguageOption is one language a tenant offers in the switcher.
type LanguageOption struct {
	Code   string
	Name   string
	Active bool
}

// GuestOptions toggles the guest/room selectors of the landing form.
type GuestOptions struct {
	AdultsEnabled   bool
	MaxAdults       int
	ChildrenEnabled bool
	MaxChildren     int
	RoomsEnabled    bool
	MaxRooms        int
}

// Config is a tenant's widget configuration. Immutable for the lifetime
// of a widget session once loaded.
type Config struct {
	ID         int64
	Name       string
	Stay       stay.Policy
	Currencies []CurrencyOption
	Languages  []LanguageOption
	Guests     GuestOptions
}

func (c *Config) Validate() error {
	return c.Stay.Validate()
}

// Currency finds an active currency option by code.
func (c *Config) Currency(code string) (CurrencyOption, bool) {
	for _, opt := range c.Currencies {
		if opt.Code == code && opt.Active {
			return opt, true
		}
	}
	return CurrencyOption{}, false
}

// Repository loads tenant configurations.
type Repository interface {
	Config(ctx context.Context, id int64) (*Config, error)
}
