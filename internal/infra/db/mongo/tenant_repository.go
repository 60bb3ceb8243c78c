package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayview/internal/domain/stay"
	"stayview/internal/domain/tenant"
)

// TenantRepository reads widget configuration documents, one per tenant.
type TenantRepository struct {
	col *mongo.Collection
}

func NewTenantRepository(db *mongo.Database) *TenantRepository {
	return &TenantRepository{col: db.Collection("tenant_config")}
}

func (r *TenantRepository) Config(ctx context.Context, id int64) (*tenant.Config, error) {
	var doc tenantDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, tenant.ErrNotFound
		}
		return nil, err
	}
	return doc.toConfig(), nil
}

// Save upserts a tenant configuration; used by fixtures import.
func (r *TenantRepository) Save(ctx context.Context, cfg *tenant.Config) error {
	doc := newTenantDocument(cfg)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	return err
}

type tenantDocument struct {
	ID         int64              `bson:"_id"`
	Name       string             `bson:"name"`
	Stay       stayDocument       `bson:"length_of_stay"`
	Currencies []currencyDocument `bson:"currencies"`
	Languages  []languageDocument `bson:"languages"`
	Guests     guestsDocument     `bson:"guest_options"`
}

type stayDocument struct {
	Min int `bson:"min"`
	Max int `bson:"max"`
}

type currencyDocument struct {
	Code   string `bson:"code"`
	Name   string `bson:"name"`
	Symbol string `bson:"symbol"`
	Active bool   `bson:"active"`
}

type languageDocument struct {
	Code   string `bson:"code"`
	Name   string `bson:"name"`
	Active bool   `bson:"active"`
}

type guestsDocument struct {
	AdultsEnabled   bool `bson:"adults_enabled"`
	MaxAdults       int  `bson:"max_adults"`
	ChildrenEnabled bool `bson:"children_enabled"`
	MaxChildren     int  `bson:"max_children"`
	RoomsEnabled    bool `bson:"rooms_enabled"`
	MaxRooms        int  `bson:"max_rooms"`
}

func newTenantDocument(cfg *tenant.Config) tenantDocument {
	doc := tenantDocument{
		ID:   cfg.ID,
		Name: cfg.Name,
		Stay: stayDocument{Min: cfg.Stay.MinNights, Max: cfg.Stay.MaxNights},
		Guests: guestsDocument{
			AdultsEnabled:   cfg.Guests.AdultsEnabled,
			MaxAdults:       cfg.Guests.MaxAdults,
			ChildrenEnabled: cfg.Guests.ChildrenEnabled,
			MaxChildren:     cfg.Guests.MaxChildren,
			RoomsEnabled:    cfg.Guests.RoomsEnabled,
			MaxRooms:        cfg.Guests.MaxRooms,
		},
	}
	for _, cur := range cfg.Currencies {
		doc.Currencies = append(doc.Currencies, currencyDocument(cur))
	}
	for _, lang := range cfg.Languages {
		doc.Languages = append(doc.Languages, languageDocument(lang))
	}
	return doc
}

func (d tenantDocument) toConfig() *tenant.Config {
	cfg := &tenant.Config{
		ID:   d.ID,
		Name: d.Name,
		Stay: stay.Policy{MinNights: d.Stay.Min, MaxNights: d.Stay.Max},
		Guests: tenant.GuestOptions{
			AdultsEnabled:   d.Guests.AdultsEnabled,
			MaxAdults:       d.Guests.MaxAdults,
			ChildrenEnabled: d.Guests.ChildrenEnabled,
			MaxChildren:     d.Guests.MaxChildren,
			RoomsEnabled:    d.Guests.RoomsEnabled,
			MaxRooms:        d.Guests.MaxRooms,
		},
	}
	for _, cur := range d.Currencies {
		cfg.Currencies = append(cfg.Currencies, tenant.CurrencyOption(cur))
	}
	for _, lang := range d.Languages {
		cfg.Languages = append(cfg.Languages, tenant.LanguageOption(lang))
	}
	return cfg
}

var _ tenant.Repository = (*TenantRepository)(nil)
