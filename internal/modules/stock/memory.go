package stock

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu   sync.RWMutex
	rows []Row
}

// NewMemoryRepository creates an in-memory stock repository, optionally
// pre-seeded with demo rows.
func NewMemoryRepository(seed []Row) Repository {
	r := &memoryRepository{}
	r.rows = append(r.rows, seed...)
	return r
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) List(ctx context.Context) ([]Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Row, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *memoryRepository) ListByItem(ctx context.Context, itemID string) ([]Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Row
	for i := range r.rows {
		if r.rows[i].ItemID == itemID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func (r *memoryRepository) ApplyBatch(ctx context.Context, batch Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range batch.Deletes {
		for i := range r.rows {
			if r.rows[i].ID == id {
				r.rows = append(r.rows[:i], r.rows[i+1:]...)
				break
			}
		}
	}
	for _, row := range batch.Upserts {
		replaced := false
		for i := range r.rows {
			if r.rows[i].ID == row.ID {
				r.rows[i] = row
				replaced = true
				break
			}
		}
		if !replaced {
			r.rows = append(r.rows, row)
		}
	}
	return nil
}

func (r *memoryRepository) DeleteByItem(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for i := range r.rows {
		if r.rows[i].ItemID != itemID {
			kept = append(kept, r.rows[i])
		}
	}
	r.rows = kept
	return nil
}
