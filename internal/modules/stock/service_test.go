package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func seededService(rows ...Row) (Service, Repository) {
	repo := NewMemoryRepository(rows)
	return NewService(repo), repo
}

func onHandRow(itemID, locationID, subLoc string, qty int) Row {
	return Row{
		ID:                uuid.New(),
		ItemID:            itemID,
		LocationID:        locationID,
		SubLocationDetail: subLoc,
		Quantity:          qty,
		Source:            SourceOnHand,
	}
}

func mustRows(t *testing.T, repo Repository) []Row {
	t.Helper()
	rows, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestAddMergesSameSlot(t *testing.T) {
	existing := onHandRow("A", "L1", "SHELF 3", 10)
	svc, repo := seededService(existing)

	merged, err := svc.Add(context.Background(), AddStockRequest{
		ItemID: "A", LocationID: "L1", SubLocationDetail: "SHELF 3", Quantity: 4,
	})
	if err != nil {
		t.Fatal(err)
	}
	if merged.ID != existing.ID {
		t.Errorf("merge created a new row id")
	}
	if merged.Quantity != 14 {
		t.Errorf("merged quantity = %d, want 14", merged.Quantity)
	}
	if rows := mustRows(t, repo); len(rows) != 1 {
		t.Errorf("row count = %d, want 1", len(rows))
	}
}

func TestAddDistinctSlotInsertsRow(t *testing.T) {
	svc, repo := seededService(onHandRow("A", "L1", "SHELF 3", 10))
	ctx := context.Background()

	// Different sub-location, different source and different location are all
	// distinct slots.
	reqs := []AddStockRequest{
		{ItemID: "A", LocationID: "L1", SubLocationDetail: "SHELF 4", Quantity: 1},
		{ItemID: "A", LocationID: "L2", SubLocationDetail: "SHELF 3", Quantity: 1},
		{ItemID: "A", LocationID: "L1", SubLocationDetail: "SHELF 3", Quantity: 1,
			Source: SourcePurchaseOrder, PONumber: "PO-1", DateReceived: "2026-08-01"},
	}
	for _, req := range reqs {
		if _, err := svc.Add(ctx, req); err != nil {
			t.Fatal(err)
		}
	}
	if rows := mustRows(t, repo); len(rows) != 4 {
		t.Errorf("row count = %d, want 4", len(rows))
	}
}

func TestAddValidation(t *testing.T) {
	svc, _ := seededService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  AddStockRequest
	}{
		{"missing item", AddStockRequest{LocationID: "L1", Quantity: 1}},
		{"missing location", AddStockRequest{ItemID: "A", Quantity: 1}},
		{"zero quantity", AddStockRequest{ItemID: "A", LocationID: "L1"}},
		{"negative quantity", AddStockRequest{ItemID: "A", LocationID: "L1", Quantity: -3}},
		{"bad source", AddStockRequest{ItemID: "A", LocationID: "L1", Quantity: 1, Source: "BACKORDER"}},
		{"po fields on on-hand", AddStockRequest{ItemID: "A", LocationID: "L1", Quantity: 1, PONumber: "PO-9"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(ctx, tc.req); err == nil {
				t.Error("Add succeeded, want error")
			}
		})
	}
}

func TestAdjustSetsAndPrunes(t *testing.T) {
	row := onHandRow("A", "L1", "", 10)
	svc, repo := seededService(row)
	ctx := context.Background()

	if err := svc.Adjust(ctx, row.ID, 25); err != nil {
		t.Fatal(err)
	}
	if rows := mustRows(t, repo); rows[0].Quantity != 25 {
		t.Errorf("quantity = %d, want 25", rows[0].Quantity)
	}

	// Zero removes the row instead of keeping an empty one.
	if err := svc.Adjust(ctx, row.ID, 0); err != nil {
		t.Fatal(err)
	}
	if rows := mustRows(t, repo); len(rows) != 0 {
		t.Errorf("row count after zero adjust = %d, want 0", len(rows))
	}

	if err := svc.Adjust(ctx, row.ID, 5); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("adjust deleted row = %v, want ErrRowNotFound", err)
	}
	if err := svc.Adjust(ctx, uuid.New(), -1); err == nil {
		t.Error("negative adjust succeeded, want error")
	}
}

func TestMovePartialDebitsSource(t *testing.T) {
	source := onHandRow("A", "L1", "", 10)
	svc, repo := seededService(source)

	err := svc.Move(context.Background(), MoveStockRequest{
		RowID: source.ID, ToLocationID: "L2", Quantity: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	rows := mustRows(t, repo)
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	byLocation := map[string]int{}
	for _, r := range rows {
		byLocation[r.LocationID] = r.Quantity
	}
	if byLocation["L1"] != 6 || byLocation["L2"] != 4 {
		t.Errorf("quantities = %v, want L1:6 L2:4", byLocation)
	}
}

func TestMoveFullDeletesSource(t *testing.T) {
	source := onHandRow("A", "L1", "", 10)
	svc, repo := seededService(source)

	err := svc.Move(context.Background(), MoveStockRequest{
		RowID: source.ID, ToLocationID: "L2", Quantity: 10,
	})
	if err != nil {
		t.Fatal(err)
	}

	rows := mustRows(t, repo)
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	if rows[0].LocationID != "L2" || rows[0].Quantity != 10 {
		t.Errorf("remaining row = %+v", rows[0])
	}
}

func TestMoveMergesIntoDestinationSlot(t *testing.T) {
	source := onHandRow("A", "L1", "", 10)
	destination := onHandRow("A", "L2", "", 3)
	svc, repo := seededService(source, destination)

	err := svc.Move(context.Background(), MoveStockRequest{
		RowID: source.ID, ToLocationID: "L2", Quantity: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	rows := mustRows(t, repo)
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	for _, r := range rows {
		switch r.ID {
		case source.ID:
			if r.Quantity != 6 {
				t.Errorf("source quantity = %d, want 6", r.Quantity)
			}
		case destination.ID:
			if r.Quantity != 7 {
				t.Errorf("destination quantity = %d, want 7", r.Quantity)
			}
		default:
			t.Errorf("unexpected new row %+v", r)
		}
	}
}

func TestMoveToOwnSlotLeavesOneRow(t *testing.T) {
	source := onHandRow("A", "L1", "SHELF 3", 10)
	svc, repo := seededService(source)

	// Destination is the source row's own slot; the quantity must stay put
	// rather than split into a second row on the same slot.
	err := svc.Move(context.Background(), MoveStockRequest{
		RowID: source.ID, ToLocationID: "L1", ToSubLocationDetail: "SHELF 3", Quantity: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	rows := mustRows(t, repo)
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1 merged row", len(rows))
	}
	if rows[0].ID != source.ID || rows[0].Quantity != 10 {
		t.Errorf("row = %+v, want untouched source with quantity 10", rows[0])
	}
}

func TestMoveInsufficientStock(t *testing.T) {
	source := onHandRow("A", "L1", "", 5)
	svc, repo := seededService(source)

	err := svc.Move(context.Background(), MoveStockRequest{
		RowID: source.ID, ToLocationID: "L2", Quantity: 6,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("Move = %v, want ErrInsufficientStock", err)
	}

	// Nothing was applied.
	rows := mustRows(t, repo)
	if len(rows) != 1 || rows[0].Quantity != 5 || rows[0].LocationID != "L1" {
		t.Errorf("state changed after rejected move: %+v", rows)
	}
}

func TestMoveUnknownRow(t *testing.T) {
	svc, _ := seededService()
	err := svc.Move(context.Background(), MoveStockRequest{
		RowID: uuid.New(), ToLocationID: "L2", Quantity: 1,
	})
	if !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("Move = %v, want ErrRowNotFound", err)
	}
}

func TestDeleteByItemCascade(t *testing.T) {
	repo := NewMemoryRepository([]Row{
		onHandRow("A", "L1", "", 5),
		onHandRow("A", "L2", "", 7),
		onHandRow("B", "L1", "", 9),
	})

	if err := repo.DeleteByItem(context.Background(), "A"); err != nil {
		t.Fatal(err)
	}
	rows := mustRows(t, repo)
	if len(rows) != 1 || rows[0].ItemID != "B" {
		t.Errorf("rows after cascade = %+v, want only item B", rows)
	}
}
