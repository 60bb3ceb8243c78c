package memory

import (
	"context"
	"sync"

	"stayview/internal/domain/stay"
	"stayview/internal/domain/tenant"
)

// TenantRepository is an in-memory tenant.Repository used for local runs
// and tests when no MongoDB is configured.
type TenantRepository struct {
	mu    sync.RWMutex
	items map[int64]*tenant.Config
}

func NewTenantRepository() *TenantRepository {
	return &TenantRepository{items: make(map[int64]*tenant.Config)}
}

func (r *TenantRepository) Config(ctx context.Context, id int64) (*tenant.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.items[id]
	if !ok {
		return nil, tenant.ErrNotFound
	}
	return cfg, nil
}

// Seed stores a configuration, replacing any previous one for the tenant.
func (r *TenantRepository) Seed(cfg *tenant.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[cfg.ID] = cfg
}

// SeedDefaults loads a demo tenant so the widget works out of the box.
func (r *TenantRepository) SeedDefaults() {
	r.Seed(&tenant.Config{
		ID:   1,
		Name: "Demo Hotels",
		Stay: stay.Policy{MinNights: 1, MaxNights: 14},
		Currencies: []tenant.CurrencyOption{
			{Code: "USD", Name: "US Dollar", Symbol: "$", Active: true},
			{Code: "EUR", Name: "Euro", Symbol: "€", Active: true},
			{Code: "GBP", Name: "British Pound", Symbol: "£", Active: true},
			{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Active: true},
		},
		Languages: []tenant.LanguageOption{
			{Code: "EN", Name: "English", Active: true},
			{Code: "ES", Name: "Spanish", Active: true},
			{Code: "FR", Name: "French", Active: true},
			{Code: "DE", Name: "German", Active: true},
		},
		Guests: tenant.GuestOptions{
			AdultsEnabled:   true,
			MaxAdults:       6,
			ChildrenEnabled: true,
			MaxChildren:     4,
			RoomsEnabled:    true,
			MaxRooms:        3,
		},
	})
}

var _ tenant.Repository = (*TenantRepository)(nil)
