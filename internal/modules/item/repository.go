package item

import "context"

// Repository defines item data storage.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, it *Item) error
	// CreateBatch inserts all items or none. Any colliding id fails the batch
	// with ErrDuplicateID.
	CreateBatch(ctx context.Context, items []Item) error
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id string) error
}
