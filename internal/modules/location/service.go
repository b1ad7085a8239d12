package location

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a location id is not in the reference set.
var ErrNotFound = errors.New("location not found")

// Service defines location reference data business logic.
type Service interface {
	List(ctx context.Context) ([]Location, error)
	Get(ctx context.Context, id string) (*Location, error)
	// Replace installs a new reference set. Every entry needs an id and a
	// unique display name.
	Replace(ctx context.Context, locations []Location) error
}

type service struct{ repo Repository }

// NewService creates a new location service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) List(ctx context.Context) ([]Location, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Replace(ctx context.Context, locations []Location) error {
	seenID := map[string]bool{}
	seenName := map[string]bool{}
	for _, loc := range locations {
		if loc.ID == "" || loc.Name == "" {
			return fmt.Errorf("location id and name are required")
		}
		if seenID[loc.ID] {
			return fmt.Errorf("duplicate location id %q", loc.ID)
		}
		if seenName[loc.Name] {
			return fmt.Errorf("duplicate location name %q", loc.Name)
		}
		seenID[loc.ID] = true
		seenName[loc.Name] = true
	}
	return s.repo.Replace(ctx, locations)
}
