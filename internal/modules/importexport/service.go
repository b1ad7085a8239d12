package importexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/location"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/stock"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/view"
)

// RowError describes one rejected CSV row. Rejections are per-row, never
// fatal: the rest of the file still imports.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReport summarizes an import run.
type ImportReport struct {
	ItemsCreated     int        `json:"items_created"`
	StockRowsCreated int        `json:"stock_rows_created"`
	Rejected         []RowError `json:"rejected,omitempty"`
}

// Service defines CSV import and export of the whole inventory.
type Service interface {
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (*ImportReport, error)
}

type service struct {
	items     item.Repository
	stock     stock.Repository
	locations location.Repository
	logger    *zap.Logger
}

// NewService creates a new import/export service.
func NewService(items item.Repository, stockRepo stock.Repository, locations location.Repository, logger *zap.Logger) Service {
	return &service{items: items, stock: stockRepo, locations: locations, logger: logger}
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	items, err := s.items.List(ctx)
	if err != nil {
		return err
	}
	rows, err := s.stock.List(ctx)
	if err != nil {
		return err
	}
	locations, err := s.locations.List(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(locations))
	for _, loc := range locations {
		names[loc.ID] = loc.Name
	}
	rowsByItem := map[string][]stock.Row{}
	for _, row := range rows {
		rowsByItem[row.ItemID] = append(rowsByItem[row.ItemID], row)
	}

	years := usageYears(items)
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader(years)); err != nil {
		return err
	}

	for _, it := range items {
		base := []string{it.ID, it.Description, it.Category, it.SubCategory, ""}
		if it.LowAlertQuantity != nil {
			base[4] = strconv.Itoa(*it.LowAlertQuantity)
		}
		usageByYear := map[int]int{}
		for _, u := range it.PriorUsage {
			usageByYear[u.Year] = u.Usage
		}
		for _, year := range years {
			cell := ""
			if amount, ok := usageByYear[year]; ok {
				cell = strconv.Itoa(amount)
			}
			base = append(base, cell)
		}

		stockRows := rowsByItem[it.ID]
		if len(stockRows) == 0 {
			// Item with no stock still exports, with empty stock columns.
			if err := cw.Write(append(base, "", "", "", "", "", "")); err != nil {
				return err
			}
			continue
		}
		for _, row := range stockRows {
			name, ok := names[row.LocationID]
			if !ok {
				// Same fallback the view shows for a dangling location id. The
				// row re-imports as a rejection instead of minting a location
				// out of a raw id.
				name = view.UnknownLocationLabel
			}
			record := append(append([]string(nil), base...),
				name, row.SubLocationDetail, strconv.Itoa(row.Quantity),
				row.Source, row.PONumber, row.DateReceived)
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *service) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	locationIDs := make(map[string]string, len(locations))
	for _, loc := range locations {
		locationIDs[loc.Name] = loc.ID
	}

	report := &ImportReport{}
	var newItems []item.Item
	itemSeen := map[string]bool{}
	var newRows []stock.Row

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report.Rejected = append(report.Rejected, RowError{Line: line, Reason: err.Error()})
			continue
		}

		id := idx.value(record, colID)
		if id == "" {
			report.Rejected = append(report.Rejected, RowError{Line: line, Reason: "missing ID"})
			continue
		}

		if !itemSeen[id] {
			description := idx.value(record, colDescription)
			if description == "" {
				report.Rejected = append(report.Rejected, RowError{Line: line, Reason: "missing DESCRIPTION"})
				continue
			}
			it := item.Item{
				ID:          id,
				Description: description,
				Category:    idx.value(record, colCategory),
				SubCategory: idx.value(record, colSubCategory),
				PriorUsage:  idx.usageFor(record),
			}
			if raw := idx.value(record, colLowAlertQty); raw != "" {
				threshold, err := strconv.Atoi(raw)
				if err != nil || threshold < 0 {
					report.Rejected = append(report.Rejected, RowError{Line: line, Reason: "bad LOW_ALERT_QTY"})
					continue
				}
				it.LowAlertQuantity = &threshold
			}
			newItems = append(newItems, it)
			itemSeen[id] = true
			report.ItemsCreated++
		}

		row, rowErr := s.stockRowFrom(idx, record, id, locationIDs)
		if rowErr != "" {
			report.Rejected = append(report.Rejected, RowError{Line: line, Reason: rowErr})
			continue
		}
		if row == nil {
			continue // item-only row, no stock columns
		}
		newRows = mergeRow(newRows, *row)
	}

	if len(newItems) > 0 {
		if err := s.items.CreateBatch(ctx, newItems); err != nil {
			return nil, err
		}
	}
	if len(newRows) > 0 {
		if err := s.stock.ApplyBatch(ctx, stock.Batch{Upserts: newRows}); err != nil {
			return nil, err
		}
	}
	report.StockRowsCreated = len(newRows)
	s.logger.Info("csv import finished",
		zap.Int("items", report.ItemsCreated),
		zap.Int("stock_rows", report.StockRowsCreated),
		zap.Int("rejected", len(report.Rejected)))
	return report, nil
}

// stockRowFrom builds the stock row a record carries, or returns a rejection
// reason. A record with no location and no quantity is item-only.
func (s *service) stockRowFrom(idx *columnIndex, record []string, itemID string, locationIDs map[string]string) (*stock.Row, string) {
	locationName := idx.value(record, colLocation)
	rawQty := idx.value(record, colQty)
	if locationName == "" && rawQty == "" {
		return nil, ""
	}
	if locationName == "" {
		return nil, "QTY without LOCATION"
	}
	locationID, ok := locationIDs[locationName]
	if !ok {
		return nil, fmt.Sprintf("unrecognized location %q", locationName)
	}
	quantity, err := strconv.Atoi(rawQty)
	if err != nil || quantity <= 0 {
		return nil, "QTY must be a positive integer"
	}
	source := idx.value(record, colSource)
	if source == "" {
		source = stock.SourceOnHand
	}
	if source != stock.SourceOnHand && source != stock.SourcePurchaseOrder {
		return nil, fmt.Sprintf("unrecognized source %q", source)
	}
	return &stock.Row{
		ID:                uuid.New(),
		ItemID:            itemID,
		LocationID:        locationID,
		SubLocationDetail: idx.value(record, colSubLocation),
		Quantity:          quantity,
		Source:            source,
		PONumber:          idx.value(record, colPONumber),
		DateReceived:      idx.value(record, colDateReceived),
	}, ""
}

// mergeRow folds rows landing on the same slot into one.
func mergeRow(rows []stock.Row, incoming stock.Row) []stock.Row {
	for i := range rows {
		if rows[i].SameSlot(incoming) {
			rows[i].Quantity += incoming.Quantity
			return rows
		}
	}
	return append(rows, incoming)
}
