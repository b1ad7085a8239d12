package stock

import (
	"context"

	"github.com/google/uuid"
)

// Batch is a set of row upserts and deletes applied as one atomic unit.
type Batch struct {
	Upserts []Row
	Deletes []uuid.UUID
}

// Repository defines stock row storage. ApplyBatch is the atomicity
// primitive: a move debits the source row and credits the destination row in
// one batch, so no intermediate state is ever observable.
type Repository interface {
	List(ctx context.Context) ([]Row, error)
	ListByItem(ctx context.Context, itemID string) ([]Row, error)
	ApplyBatch(ctx context.Context, batch Batch) error
	DeleteByItem(ctx context.Context, itemID string) error
}
