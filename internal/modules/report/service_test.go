package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/location"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/settings"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/stock"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/view"
)

func intPtr(v int) *int { return &v }

func newTestService() Service {
	threshold := 50
	items := item.NewMemoryRepository([]item.Item{
		{ID: "A", Description: "CABLE", Category: "WIRE", LowAlertQuantity: &threshold},
		{ID: "B", Description: "TAPE", LowAlertQuantity: intPtr(5)},
		{ID: "C", Description: "BOLT"},
	})
	rows := stock.NewMemoryRepository([]stock.Row{
		{ID: uuid.New(), ItemID: "A", LocationID: "L1", Quantity: 40, Source: stock.SourceOnHand},
		{ID: uuid.New(), ItemID: "A", LocationID: "L2", Quantity: 5, Source: stock.SourceOnHand},
		{ID: uuid.New(), ItemID: "B", LocationID: "L1", Quantity: 100, Source: stock.SourceOnHand},
	})
	locations := location.NewMemoryRepository([]location.Location{
		{ID: "L1", Name: "MAIN"},
		{ID: "L2", Name: "ANNEX"},
	})
	colors := settings.NewMemoryRepository(nil)
	return NewService(view.NewService(items, rows, locations, colors))
}

func TestLowStock(t *testing.T) {
	svc := newTestService()

	entries, err := svc.LowStock(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// A holds 45 against a threshold of 50; B is comfortably stocked and C has
	// no threshold at all.
	if len(entries) != 1 {
		t.Fatalf("entries = %+v, want only item A", entries)
	}
	e := entries[0]
	if e.ItemID != "A" || e.Threshold != 50 || e.TotalQuantity != 45 {
		t.Errorf("entry = %+v", e)
	}
}

func TestViewCSVRespectsState(t *testing.T) {
	svc := newTestService()

	var buf bytes.Buffer
	st := view.State{Search: "CABLE"}
	if err := svc.ViewCSV(context.Background(), st, &buf); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("record count = %d, want header plus one row", len(records))
	}
	row := records[1]
	if row[0] != "A" || row[4] != "45" || row[6] != "true" {
		t.Errorf("row = %v", row)
	}
}

func TestLabels(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	labels, err := svc.Labels(ctx, []string{"A", "C"})
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 2 {
		t.Fatalf("labels = %+v", labels)
	}
	a := labels[0]
	if a.BarcodeData != "A" || a.Description != "CABLE" {
		t.Errorf("label = %+v", a)
	}
	// Locations list follows the row's name-sorted stock.
	if !strings.Contains(a.Locations, "ANNEX: 5") || !strings.Contains(a.Locations, "MAIN: 40") {
		t.Errorf("locations = %q", a.Locations)
	}
	if labels[1].Locations != "" {
		t.Errorf("stockless item locations = %q", labels[1].Locations)
	}

	if _, err := svc.Labels(ctx, []string{"MISSING"}); err == nil {
		t.Error("Labels succeeded for unknown id")
	}
}
