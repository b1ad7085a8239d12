package item

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateID is returned when creating an item whose id already exists.
	ErrDuplicateID = errors.New("item id already exists")
	// ErrNotFound is returned when an item id does not exist.
	ErrNotFound = errors.New("item not found")
)

// StockCascade removes stock rows belonging to deleted items. Implemented by
// the stock repository; kept narrow so this module does not depend on it.
type StockCascade interface {
	DeleteByItem(ctx context.Context, itemID string) error
}

// Service defines item business logic.
type Service interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, req CreateItemRequest) (*Item, error)
	// Duplicate copies an existing item's attributes under a new id. Stock is
	// never copied.
	Duplicate(ctx context.Context, sourceID, newID string) (*Item, error)
	Update(ctx context.Context, id string, req UpdateItemRequest) (*Item, error)
	// BulkUpdate applies the same attribute changes to every listed item.
	BulkUpdate(ctx context.Context, req BulkUpdateRequest) ([]Item, error)
	// Delete removes the item and cascades to all of its stock rows.
	Delete(ctx context.Context, id string) error
}

// CreateItemRequest holds data for creating an item.
type CreateItemRequest struct {
	ID               string      `json:"id"`
	Description      string      `json:"description"`
	Category         string      `json:"category"`
	SubCategory      string      `json:"sub_category"`
	PriorUsage       []UsageYear `json:"prior_usage"`
	LowAlertQuantity *int        `json:"low_alert_quantity"`
}

// UpdateItemRequest holds attribute changes for an item. The id is immutable.
type UpdateItemRequest struct {
	Description      string      `json:"description"`
	Category         string      `json:"category"`
	SubCategory      string      `json:"sub_category"`
	PriorUsage       []UsageYear `json:"prior_usage"`
	LowAlertQuantity *int        `json:"low_alert_quantity"`
}

// BulkUpdateRequest applies shared changes to a set of items. Nil fields are
// left untouched.
type BulkUpdateRequest struct {
	IDs              []string `json:"ids"`
	Category         *string  `json:"category"`
	SubCategory      *string  `json:"sub_category"`
	LowAlertQuantity *int     `json:"low_alert_quantity"`
	ClearLowAlert    bool     `json:"clear_low_alert"`
}

type service struct {
	repo  Repository
	stock StockCascade
}

// NewService creates a new item service.
func NewService(repo Repository, stock StockCascade) Service {
	return &service{repo: repo, stock: stock}
}

func (s *service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateItemRequest) (*Item, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("item id is required")
	}
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if req.LowAlertQuantity != nil && *req.LowAlertQuantity < 0 {
		return nil, fmt.Errorf("low_alert_quantity must not be negative")
	}
	it := &Item{
		ID:               req.ID,
		Description:      req.Description,
		Category:         req.Category,
		SubCategory:      req.SubCategory,
		PriorUsage:       NormalizeUsage(req.PriorUsage),
		LowAlertQuantity: req.LowAlertQuantity,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Duplicate(ctx context.Context, sourceID, newID string) (*Item, error) {
	if newID == "" {
		return nil, fmt.Errorf("new item id is required")
	}
	src, err := s.repo.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	copied := *src
	copied.ID = newID
	copied.PriorUsage = append([]UsageYear(nil), src.PriorUsage...)
	if src.LowAlertQuantity != nil {
		threshold := *src.LowAlertQuantity
		copied.LowAlertQuantity = &threshold
	}
	if err := s.repo.Create(ctx, &copied); err != nil {
		return nil, err
	}
	return &copied, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if req.LowAlertQuantity != nil && *req.LowAlertQuantity < 0 {
		return nil, fmt.Errorf("low_alert_quantity must not be negative")
	}
	it.Description = req.Description
	it.Category = req.Category
	it.SubCategory = req.SubCategory
	it.PriorUsage = NormalizeUsage(req.PriorUsage)
	it.LowAlertQuantity = req.LowAlertQuantity
	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) BulkUpdate(ctx context.Context, req BulkUpdateRequest) ([]Item, error) {
	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("at least one item id is required")
	}
	var updated []Item
	for _, id := range req.IDs {
		it, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", id, err)
		}
		if req.Category != nil {
			it.Category = *req.Category
		}
		if req.SubCategory != nil {
			it.SubCategory = *req.SubCategory
		}
		if req.ClearLowAlert {
			it.LowAlertQuantity = nil
		} else if req.LowAlertQuantity != nil {
			threshold := *req.LowAlertQuantity
			it.LowAlertQuantity = &threshold
		}
		if err := s.repo.Update(ctx, it); err != nil {
			return nil, fmt.Errorf("item %s: %w", id, err)
		}
		updated = append(updated, *it)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.stock.DeleteByItem(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// NormalizeUsage sorts usage entries by year ascending and keeps the last
// entry seen for a year when duplicates come in.
func NormalizeUsage(usage []UsageYear) []UsageYear {
	if len(usage) == 0 {
		return nil
	}
	byYear := make(map[int]int, len(usage))
	for _, u := range usage {
		byYear[u.Year] = u.Usage
	}
	out := make([]UsageYear, 0, len(byYear))
	for year, amount := range byYear {
		out = append(out, UsageYear{Year: year, Usage: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
