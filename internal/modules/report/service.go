package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/view"
)

// Service produces reports derived from the inventory view.
type Service interface {
	// LowStock lists every item currently flagged low, regardless of any
	// view filters.
	LowStock(ctx context.Context) ([]LowStockEntry, error)
	// ViewCSV writes the filtered, sorted view as CSV.
	ViewCSV(ctx context.Context, st view.State, w io.Writer) error
	// Labels assembles barcode label payloads for the given item ids.
	Labels(ctx context.Context, itemIDs []string) ([]Label, error)
}

type service struct{ views view.Service }

// NewService creates a new report service.
func NewService(views view.Service) Service { return &service{views: views} }

func (s *service) LowStock(ctx context.Context) ([]LowStockEntry, error) {
	model, err := s.views.View(ctx, view.State{})
	if err != nil {
		return nil, err
	}
	var entries []LowStockEntry
	for _, row := range model.Rows {
		if !row.IsLowStock {
			continue
		}
		entries = append(entries, LowStockEntry{
			ItemID:        row.Item.ID,
			Description:   row.Item.Description,
			Category:      row.EffectiveCategory,
			Threshold:     *row.Item.LowAlertQuantity,
			TotalQuantity: row.TotalQuantity,
			ETR:           row.ETR,
		})
	}
	return entries, nil
}

func (s *service) ViewCSV(ctx context.Context, st view.State, w io.Writer) error {
	model, err := s.views.View(ctx, st)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"ID", "DESCRIPTION", "CATEGORY", "SUB_CATEGORY", "TOTAL_QTY", "ETR", "LOW_STOCK",
	}); err != nil {
		return err
	}
	for _, row := range model.Rows {
		if err := cw.Write([]string{
			row.Item.ID,
			row.Item.Description,
			row.EffectiveCategory,
			row.Item.SubCategory,
			strconv.Itoa(row.TotalQuantity),
			row.ETR,
			strconv.FormatBool(row.IsLowStock),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *service) Labels(ctx context.Context, itemIDs []string) ([]Label, error) {
	model, err := s.views.View(ctx, view.State{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]view.Row, len(model.Rows))
	for _, row := range model.Rows {
		byID[row.Item.ID] = row
	}

	labels := make([]Label, 0, len(itemIDs))
	for _, id := range itemIDs {
		row, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown item id %q", id)
		}
		var parts []string
		for _, ls := range row.LocationsWithStock {
			parts = append(parts, fmt.Sprintf("%s: %d", ls.LocationName, ls.Quantity))
		}
		labels = append(labels, Label{
			ItemID:      row.Item.ID,
			Description: row.Item.Description,
			BarcodeData: row.Item.ID,
			Locations:   strings.Join(parts, ", "),
		})
	}
	return labels, nil
}
