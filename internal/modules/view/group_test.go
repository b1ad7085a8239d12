package view

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/stock"
)

func groupKeys(m Model) []string {
	var keys []string
	for _, g := range m.Groups {
		keys = append(keys, g.Key)
	}
	return keys
}

func TestGroupByCategory(t *testing.T) {
	in := Input{
		Items: []item.Item{
			{ID: "1", Description: "d", Category: "TOOLS"},
			{ID: "2", Description: "d", Category: "CABLE"},
			{ID: "3", Description: "d", Category: "TOOLS"},
			{ID: "4", Description: "d"},
		},
	}
	m := Derive(in, State{GroupMode: GroupByCategory})

	want := []string{"CABLE", "TOOLS", "UNCATEGORIZED"}
	if got := groupKeys(m); !reflect.DeepEqual(got, want) {
		t.Fatalf("group keys = %v, want %v", got, want)
	}

	// Entries inside a group keep the sorted item order.
	var tools []string
	for _, e := range m.Groups[1].Entries {
		tools = append(tools, e.Item.ID)
	}
	if want := []string{"1", "3"}; !reflect.DeepEqual(tools, want) {
		t.Errorf("TOOLS entries = %v, want %v", tools, want)
	}

	// The flat pre-grouping set is still present for select-all.
	if len(m.Rows) != 4 {
		t.Errorf("Rows = %d, want full filtered set of 4", len(m.Rows))
	}
}

func TestGroupByLocationEmitsRowPerStockEntry(t *testing.T) {
	in := Input{
		Items: []item.Item{{ID: "A", Description: "d"}},
		Stock: []stock.Row{
			stockRow("A", "L1", 5),
			stockRow("A", "L2", 7),
		},
		Locations: testLocations(),
	}
	m := Derive(in, State{GroupMode: GroupByLocation})

	if got := groupKeys(m); !reflect.DeepEqual(got, []string{"ANNEX", "MAIN"}) {
		t.Fatalf("group keys = %v, want [ANNEX MAIN]", got)
	}

	// An item stocked in two locations appears in both groups, each entry
	// carrying that location's own quantity, and the per-entry quantities sum
	// to the item total.
	total := 0
	for _, g := range m.Groups {
		if len(g.Entries) != 1 {
			t.Fatalf("group %s has %d entries, want 1", g.Key, len(g.Entries))
		}
		e := g.Entries[0]
		if e.Item.ID != "A" {
			t.Fatalf("group %s entry item = %s", g.Key, e.Item.ID)
		}
		total += e.DisplayQuantity
	}
	if total != 12 {
		t.Errorf("summed group quantities = %d, want item total 12", total)
	}
	if m.Groups[0].Entries[0].DisplayQuantity != 7 { // ANNEX holds 7
		t.Errorf("ANNEX quantity = %d, want 7", m.Groups[0].Entries[0].DisplayQuantity)
	}
}

func TestGroupByLocationSubLocationSuffix(t *testing.T) {
	row := stock.Row{
		ID: uuid.New(), ItemID: "A", LocationID: "L1",
		SubLocationDetail: "RACK 7", Quantity: 3, Source: stock.SourceOnHand,
	}
	in := Input{
		Items:     []item.Item{{ID: "A", Description: "d"}},
		Stock:     []stock.Row{row},
		Locations: testLocations(),
	}
	m := Derive(in, State{GroupMode: GroupByLocation})
	if got := groupKeys(m); !reflect.DeepEqual(got, []string{"MAIN - RACK 7"}) {
		t.Errorf("group keys = %v, want [MAIN - RACK 7]", got)
	}
}

func TestGroupNone(t *testing.T) {
	in := Input{Items: []item.Item{{ID: "A", Description: "d"}}}
	m := Derive(in, State{})
	if m.Groups != nil {
		t.Errorf("ungrouped view has %d groups, want none", len(m.Groups))
	}
	if m.GroupMode != GroupNone {
		t.Errorf("GroupMode = %q, want %q", m.GroupMode, GroupNone)
	}
}

func TestCategoryGroupDisplayQuantityIsTotal(t *testing.T) {
	in := Input{
		Items: []item.Item{{ID: "A", Description: "d", Category: "X"}},
		Stock: []stock.Row{
			stockRow("A", "L1", 5),
			stockRow("A", "L2", 7),
		},
		Locations: testLocations(),
	}
	m := Derive(in, State{GroupMode: GroupByCategory})
	if len(m.Groups) != 1 || len(m.Groups[0].Entries) != 1 {
		t.Fatalf("unexpected grouping shape: %+v", m.Groups)
	}
	if got := m.Groups[0].Entries[0].DisplayQuantity; got != 12 {
		t.Errorf("category group quantity = %d, want total 12", got)
	}
}
