package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/stock"
)

// Derive computes the annotated, filtered, sorted and optionally grouped view
// of the inventory. It is a pure function of its inputs: it performs no I/O,
// never mutates its arguments, and calling it twice with identical inputs
// yields identical output.
func Derive(in Input, st State) Model {
	// Collators are cheap to build and not safe for shared use.
	coll := collate.New(language.English)

	names := make(map[string]string, len(in.Locations))
	for _, loc := range in.Locations {
		names[loc.ID] = loc.Name
	}

	rows := make([]Row, 0, len(in.Items))
	lowStock := 0
	for _, it := range in.Items {
		row := deriveRow(it, in.Stock, names, in.Colors, coll)
		if row.IsLowStock {
			lowStock++
		}
		rows = append(rows, row)
	}

	rows = applyFilters(rows, st)
	sortRows(rows, st, coll)

	mode := st.GroupMode
	if mode == "" {
		mode = GroupNone
	}
	return Model{
		Rows:          rows,
		Groups:        groupRows(rows, mode, coll),
		GroupMode:     mode,
		LowStockCount: lowStock,
	}
}

// deriveRow computes every derived metric for one item. It is total: unknown
// locations, empty usage histories and zero quantities all produce a fully
// populated row, never an error.
func deriveRow(it item.Item, allStock []stock.Row, names map[string]string, colors map[string]string, coll *collate.Collator) Row {
	row := Row{
		Item:              it,
		EffectiveCategory: it.EffectiveCategory(),
	}

	for _, sr := range allStock {
		if sr.ItemID != it.ID {
			continue
		}
		name, ok := names[sr.LocationID]
		if !ok {
			name = UnknownLocationLabel
		}
		row.TotalQuantity += sr.Quantity
		row.LocationsWithStock = append(row.LocationsWithStock, LocationStock{
			RowID:             sr.ID,
			LocationID:        sr.LocationID,
			LocationName:      name,
			SubLocationDetail: sr.SubLocationDetail,
			Quantity:          sr.Quantity,
			Source:            sr.Source,
			PONumber:          sr.PONumber,
			DateReceived:      sr.DateReceived,
		})
	}
	sort.SliceStable(row.LocationsWithStock, func(i, j int) bool {
		return coll.CompareString(row.LocationsWithStock[i].LocationName,
			row.LocationsWithStock[j].LocationName) < 0
	})

	row.QuantityInView = row.TotalQuantity
	row.ETR = estimatedTimeRemaining(row.TotalQuantity, it.PriorUsage)
	row.IsLowStock = it.LowAlertQuantity != nil && row.TotalQuantity <= *it.LowAlertQuantity
	row.AccentColor = accentColor(it, colors)
	row.StockTooltip = tooltip(row)
	return row
}

// estimatedTimeRemaining forecasts how long the current quantity lasts at the
// mean of the recorded yearly usage. Guarded so it never divides by zero.
func estimatedTimeRemaining(total int, usage []item.UsageYear) string {
	if total <= 0 || len(usage) == 0 {
		return "N/A"
	}
	sum := 0
	for _, u := range usage {
		sum += u.Usage
	}
	if sum <= 0 {
		return "N/A"
	}
	average := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(usage))))
	monthly := average.Div(decimal.NewFromInt(12))
	months := decimal.NewFromInt(int64(total)).Div(monthly)
	return months.StringFixed(1) + " MONTHS"
}

// accentColor prefers the sub-category's color, falls back to the effective
// category's, and reports absence with an empty string.
func accentColor(it item.Item, colors map[string]string) string {
	if it.SubCategory != "" {
		if color, ok := colors[it.SubCategory]; ok {
			return color
		}
	}
	if color, ok := colors[it.EffectiveCategory()]; ok {
		return color
	}
	return ""
}

func tooltip(row Row) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TOTAL: %d | ETR: %s", row.TotalQuantity, row.ETR)
	if len(row.LocationsWithStock) == 0 {
		sb.WriteString(" | NO STOCK")
		return sb.String()
	}
	sb.WriteString(" | LOCATIONS: ")
	for i, ls := range row.LocationsWithStock {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %d", ls.LocationName, ls.Quantity)
	}
	return sb.String()
}
