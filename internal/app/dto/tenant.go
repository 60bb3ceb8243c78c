package dto

import "stayview/internal/domain/tenant"

type TenantConfig struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Stay       StayBounds       `json:"length_of_stay"`
	Currencies []CurrencyOption `json:"currencies"`
	Languages  []LanguageOption `json:"languages"`
	Guests     GuestOptions     `json:"guest_options"`
}

type StayBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type CurrencyOption struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Active bool   `json:"active"`
}

type LanguageOption struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type GuestOptions struct {
	AdultsEnabled   bool `json:"adults_enabled"`
	MaxAdults       int  `json:"max_adults"`
	ChildrenEnabled bool `json:"children_enabled"`
	MaxChildren     int  `json:"max_children"`
	RoomsEnabled    bool `json:"rooms_enabled"`
	MaxRooms        int  `json:"max_rooms"`
}

func MapTenantConfig(cfg *tenant.Config) TenantConfig {
	out := TenantConfig{
		ID:   cfg.ID,
		Name: cfg.Name,
		Stay: StayBounds{Min: cfg.Stay.MinNights, Max: cfg.Stay.MaxNights},
		Guests: GuestOptions{
			AdultsEnabled:   cfg.Guests.AdultsEnabled,
			MaxAdults:       cfg.Guests.MaxAdults,
			ChildrenEnabled: cfg.Guests.ChildrenEnabled,
			MaxChildren:     cfg.Guests.MaxChildren,
			RoomsEnabled:    cfg.Guests.RoomsEnabled,
			MaxRooms:        cfg.Guests.MaxRooms,
		},
	}
	for _, cur := range cfg.Currencies {
		out.Currencies = append(out.Currencies, CurrencyOption(cur))
	}
	for _, lang := range cfg.Languages {
		out.Languages = append(out.Languages, LanguageOption(lang))
	}
	return out
}
