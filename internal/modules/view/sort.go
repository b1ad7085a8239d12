package view

import (
	"sort"

	"golang.org/x/text/collate"
)

// sortRows orders rows by the state's sort key. Descending is the exact
// negation of the ascending comparator, and the sort is stable, so equal keys
// keep their input order in both directions.
func sortRows(rows []Row, st State, coll *collate.Collator) {
	key := st.SortKey
	if key == "" {
		key = SortByID
	}
	descending := st.SortDir == Descending

	sort.SliceStable(rows, func(i, j int) bool {
		c := compareRows(rows[i], rows[j], key, coll)
		if descending {
			return c > 0
		}
		return c < 0
	})
}

func compareRows(a, b Row, key SortKey, coll *collate.Collator) int {
	switch key {
	case SortByQuantity:
		switch {
		case a.QuantityInView < b.QuantityInView:
			return -1
		case a.QuantityInView > b.QuantityInView:
			return 1
		default:
			return 0
		}
	case SortByCategory:
		// Two-level: primary effective category, secondary sub-category.
		if c := coll.CompareString(a.EffectiveCategory, b.EffectiveCategory); c != 0 {
			return c
		}
		return coll.CompareString(a.Item.SubCategory, b.Item.SubCategory)
	case SortByDescription:
		return coll.CompareString(a.Item.Description, b.Item.Description)
	default:
		return coll.CompareString(a.Item.ID, b.Item.ID)
	}
}
