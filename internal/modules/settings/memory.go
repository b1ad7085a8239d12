package settings

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	colors CategoryColors
}

// NewMemoryRepository creates an in-memory settings repository, optionally
// pre-seeded with a color mapping.
func NewMemoryRepository(seed CategoryColors) Repository {
	colors := CategoryColors{}
	for label, color := range seed {
		colors[label] = color
	}
	return &memoryRepository{colors: colors}
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Colors(ctx context.Context) (CategoryColors, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := CategoryColors{}
	for label, color := range r.colors {
		out[label] = color
	}
	return out, nil
}

func (r *memoryRepository) ReplaceColors(ctx context.Context, colors CategoryColors) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colors = CategoryColors{}
	for label, color := range colors {
		r.colors[label] = color
	}
	return nil
}
