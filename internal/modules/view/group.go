package view

import (
	"sort"

	"golang.org/x/text/collate"
)

// groupRows partitions the sorted rows by the active mode. Group keys are
// ordered with locale-aware ascending comparison; entries inside a group keep
// the sort order they arrived in.
func groupRows(rows []Row, mode GroupMode, coll *collate.Collator) []Group {
	switch mode {
	case GroupByCategory:
		return groupByCategory(rows, coll)
	case GroupByLocation:
		return groupByLocation(rows, coll)
	default:
		return nil
	}
}

func groupByCategory(rows []Row, coll *collate.Collator) []Group {
	entries := map[string][]GroupEntry{}
	for _, row := range rows {
		key := row.EffectiveCategory
		entries[key] = append(entries[key], GroupEntry{Row: row, DisplayQuantity: row.TotalQuantity})
	}
	return sortedGroups(entries, coll)
}

// groupByLocation emits one entry per stock row, so an item stocked in three
// locations appears in three groups, each entry showing that location's own
// quantity rather than the item total.
func groupByLocation(rows []Row, coll *collate.Collator) []Group {
	entries := map[string][]GroupEntry{}
	for _, row := range rows {
		for _, ls := range row.LocationsWithStock {
			key := ls.LocationName
			if ls.SubLocationDetail != "" {
				key += " - " + ls.SubLocationDetail
			}
			entries[key] = append(entries[key], GroupEntry{Row: row, DisplayQuantity: ls.Quantity})
		}
	}
	return sortedGroups(entries, coll)
}

func sortedGroups(entries map[string][]GroupEntry, coll *collate.Collator) []Group {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool { return coll.CompareString(keys[i], keys[j]) < 0 })

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, Group{Key: key, Entries: entries[key]})
	}
	return groups
}
