package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrRowNotFound is returned when a stock row id does not exist.
	ErrRowNotFound = errors.New("stock row not found")
	// ErrInsufficientStock is returned when a move debits more than the
	// source row holds.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Service defines stock mutation flows. Every flow leaves the collection in a
// merged, pruned state: one row per slot, no row at quantity zero or below.
type Service interface {
	List(ctx context.Context) ([]Row, error)
	ListByItem(ctx context.Context, itemID string) ([]Row, error)
	// Add merges the quantity into an existing row on the same slot, or
	// inserts a new row.
	Add(ctx context.Context, req AddStockRequest) (*Row, error)
	// Adjust sets a row's quantity outright; zero deletes the row.
	Adjust(ctx context.Context, rowID uuid.UUID, quantity int) error
	// Move transfers quantity between locations as one atomic unit.
	Move(ctx context.Context, req MoveStockRequest) error
	Delete(ctx context.Context, rowID uuid.UUID) error
}

// AddStockRequest holds data for adding stock.
type AddStockRequest struct {
	ItemID            string `json:"item_id"`
	LocationID        string `json:"location_id"`
	SubLocationDetail string `json:"sub_location_detail"`
	Quantity          int    `json:"quantity"`
	Source            string `json:"source"`
	PONumber          string `json:"po_number"`
	DateReceived      string `json:"date_received"`
}

// MoveStockRequest moves quantity from one stock row to another location.
type MoveStockRequest struct {
	RowID               uuid.UUID `json:"row_id"`
	ToLocationID        string    `json:"to_location_id"`
	ToSubLocationDetail string    `json:"to_sub_location_detail"`
	Quantity            int       `json:"quantity"`
}

type service struct{ repo Repository }

// NewService creates a new stock service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) List(ctx context.Context) ([]Row, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByItem(ctx context.Context, itemID string) ([]Row, error) {
	return s.repo.ListByItem(ctx, itemID)
}

func (s *service) Add(ctx context.Context, req AddStockRequest) (*Row, error) {
	if req.ItemID == "" || req.LocationID == "" {
		return nil, fmt.Errorf("item_id and location_id are required")
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	source := req.Source
	if source == "" {
		source = SourceOnHand
	}
	if source != SourceOnHand && source != SourcePurchaseOrder {
		return nil, fmt.Errorf("source must be %q or %q", SourceOnHand, SourcePurchaseOrder)
	}
	if source != SourcePurchaseOrder && (req.PONumber != "" || req.DateReceived != "") {
		return nil, fmt.Errorf("po_number and date_received only apply to %q stock", SourcePurchaseOrder)
	}

	incoming := Row{
		ID:                uuid.New(),
		ItemID:            req.ItemID,
		LocationID:        req.LocationID,
		SubLocationDetail: req.SubLocationDetail,
		Quantity:          req.Quantity,
		Source:            source,
		PONumber:          req.PONumber,
		DateReceived:      req.DateReceived,
	}

	existing, err := s.repo.ListByItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].SameSlot(incoming) {
			merged := existing[i]
			merged.Quantity += req.Quantity
			if err := s.repo.ApplyBatch(ctx, Batch{Upserts: []Row{merged}}); err != nil {
				return nil, err
			}
			return &merged, nil
		}
	}
	if err := s.repo.ApplyBatch(ctx, Batch{Upserts: []Row{incoming}}); err != nil {
		return nil, err
	}
	return &incoming, nil
}

func (s *service) Adjust(ctx context.Context, rowID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	row, err := s.findRow(ctx, rowID)
	if err != nil {
		return err
	}
	if quantity == 0 {
		return s.repo.ApplyBatch(ctx, Batch{Deletes: []uuid.UUID{rowID}})
	}
	row.Quantity = quantity
	return s.repo.ApplyBatch(ctx, Batch{Upserts: []Row{*row}})
}

func (s *service) Move(ctx context.Context, req MoveStockRequest) error {
	if req.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if req.ToLocationID == "" {
		return fmt.Errorf("to_location_id is required")
	}
	source, err := s.findRow(ctx, req.RowID)
	if err != nil {
		return err
	}
	if req.Quantity > source.Quantity {
		return ErrInsufficientStock
	}

	destination := Row{
		ID:                uuid.New(),
		ItemID:            source.ItemID,
		LocationID:        req.ToLocationID,
		SubLocationDetail: req.ToSubLocationDetail,
		Quantity:          req.Quantity,
		Source:            source.Source,
		PONumber:          source.PONumber,
		DateReceived:      source.DateReceived,
	}
	// Moving onto the source's own slot would split it into two rows on the
	// same slot; the quantity stays where it is, so nothing to apply.
	if source.SameSlot(destination) {
		return nil
	}

	// Merge into an existing destination row on the same slot.
	rows, err := s.repo.ListByItem(ctx, source.ItemID)
	if err != nil {
		return err
	}
	for i := range rows {
		if rows[i].ID != source.ID && rows[i].SameSlot(destination) {
			destination = rows[i]
			destination.Quantity += req.Quantity
			break
		}
	}

	batch := Batch{Upserts: []Row{destination}}
	if req.Quantity == source.Quantity {
		batch.Deletes = []uuid.UUID{source.ID}
	} else {
		debited := *source
		debited.Quantity -= req.Quantity
		batch.Upserts = append(batch.Upserts, debited)
	}
	return s.repo.ApplyBatch(ctx, batch)
}

func (s *service) Delete(ctx context.Context, rowID uuid.UUID) error {
	if _, err := s.findRow(ctx, rowID); err != nil {
		return err
	}
	return s.repo.ApplyBatch(ctx, Batch{Deletes: []uuid.UUID{rowID}})
}

func (s *service) findRow(ctx context.Context, rowID uuid.UUID) (*Row, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ID == rowID {
			row := rows[i]
			return &row, nil
		}
	}
	return nil, ErrRowNotFound
}
