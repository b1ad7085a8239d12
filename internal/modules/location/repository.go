package location

import "context"

// Repository defines location reference data storage.
type Repository interface {
	List(ctx context.Context) ([]Location, error)
	GetByID(ctx context.Context, id string) (*Location, error)
	// Replace swaps the whole reference set in one batch.
	Replace(ctx context.Context, locations []Location) error
}
