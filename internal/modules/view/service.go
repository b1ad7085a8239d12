package view

import (
	"context"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/location"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/settings"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/stock"
)

// Service assembles engine input from the repositories and derives the view.
type Service interface {
	View(ctx context.Context, st State) (*Model, error)
	// Snapshot returns the raw engine input for callers that derive
	// themselves (reports, exports).
	Snapshot(ctx context.Context) (*Input, error)
}

type service struct {
	items     item.Repository
	stock     stock.Repository
	locations location.Repository
	settings  settings.Repository
}

// NewService creates a new view service.
func NewService(items item.Repository, stockRepo stock.Repository, locations location.Repository, settingsRepo settings.Repository) Service {
	return &service{items: items, stock: stockRepo, locations: locations, settings: settingsRepo}
}

func (s *service) Snapshot(ctx context.Context) (*Input, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.stock.List(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	colors, err := s.settings.Colors(ctx)
	if err != nil {
		return nil, err
	}
	return &Input{Items: items, Stock: rows, Locations: locations, Colors: colors}, nil
}

func (s *service) View(ctx context.Context, st State) (*Model, error) {
	in, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	model := Derive(*in, st)
	return &model, nil
}
