package location

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu        sync.RWMutex
	locations []Location
}

// NewMemoryRepository creates an in-memory location repository, optionally
// pre-seeded with a reference set.
func NewMemoryRepository(seed []Location) Repository {
	r := &memoryRepository{}
	r.locations = append(r.locations, seed...)
	return r
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) List(ctx context.Context) ([]Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Location, len(r.locations))
	copy(out, r.locations)
	return out, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.locations {
		if r.locations[i].ID == id {
			loc := r.locations[i]
			return &loc, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Replace(ctx context.Context, locations []Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = make([]Location, len(locations))
	copy(r.locations, locations)
	return nil
}
