package item

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemoryRepository creates an in-memory item repository, optionally
// pre-seeded with demo items.
func NewMemoryRepository(seed []Item) Repository {
	r := &memoryRepository{}
	r.items = append(r.items, seed...)
	return r
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) List(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Create(ctx context.Context, it *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == it.ID {
			return ErrDuplicateID
		}
	}
	r.items = append(r.items, *it)
	return nil
}

func (r *memoryRepository) CreateBatch(ctx context.Context, items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := make(map[string]bool, len(r.items))
	for i := range r.items {
		existing[r.items[i].ID] = true
	}
	for i := range items {
		if existing[items[i].ID] {
			return ErrDuplicateID
		}
		existing[items[i].ID] = true
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, it *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == it.ID {
			r.items[i] = *it
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
