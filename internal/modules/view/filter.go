package view

import "strings"

// applyFilters runs the search, category and location stages in order. Each
// stage narrows the output of the previous one (AND semantics); all stages
// run before sorting and grouping.
func applyFilters(rows []Row, st State) []Row {
	if st.Search != "" {
		rows = filterSearch(rows, st.Search)
	}
	if st.CategoryFilter != "" {
		rows = filterCategory(rows, st.CategoryFilter)
	}
	if st.LocationFilter != "" {
		rows = filterLocation(rows, st.LocationFilter)
	}
	return rows
}

// filterSearch keeps rows whose id, description, category or sub-category
// contains the query, case-insensitively. Both sides are uppercased so the
// comparison normalizes identically.
func filterSearch(rows []Row, query string) []Row {
	query = strings.ToUpper(query)
	out := rows[:0:0]
	for _, row := range rows {
		if strings.Contains(strings.ToUpper(row.Item.ID), query) ||
			strings.Contains(strings.ToUpper(row.Item.Description), query) ||
			strings.Contains(strings.ToUpper(row.Item.Category), query) ||
			(row.Item.SubCategory != "" &&
				strings.Contains(strings.ToUpper(row.Item.SubCategory), query)) {
			out = append(out, row)
		}
	}
	return out
}

// filterCategory matches either a bare category name or the composite form
// "<category>|<subCategory>", which requires both parts to match exactly.
func filterCategory(rows []Row, filter string) []Row {
	category := filter
	subCategory := ""
	composite := false
	if idx := strings.Index(filter, "|"); idx >= 0 {
		composite = true
		category = filter[:idx]
		subCategory = filter[idx+1:]
	}
	out := rows[:0:0]
	for _, row := range rows {
		if row.EffectiveCategory != category {
			continue
		}
		if composite && row.Item.SubCategory != subCategory {
			continue
		}
		out = append(out, row)
	}
	return out
}

// filterLocation keeps rows with at least one stock entry at the location.
func filterLocation(rows []Row, locationID string) []Row {
	out := rows[:0:0]
	for _, row := range rows {
		for _, ls := range row.LocationsWithStock {
			if ls.LocationID == locationID {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
