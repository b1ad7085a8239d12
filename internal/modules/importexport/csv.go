package importexport

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
)

// Fixed CSV column names. Usage history travels as one USAGE_<year> column
// per year; the export header carries the sorted union of years across all
// items.
const (
	colID           = "ID"
	colDescription  = "DESCRIPTION"
	colCategory     = "CATEGORY"
	colSubCategory  = "SUB_CATEGORY"
	colLowAlertQty  = "LOW_ALERT_QTY"
	colLocation     = "LOCATION"
	colSubLocation  = "SUB_LOCATION"
	colQty          = "QTY"
	colSource       = "SOURCE"
	colPONumber     = "PO_NUMBER"
	colDateReceived = "DATE_RECEIVED"

	usagePrefix = "USAGE_"
)

// usageYears returns the sorted union of usage years across items.
func usageYears(items []item.Item) []int {
	seen := map[int]bool{}
	for _, it := range items {
		for _, u := range it.PriorUsage {
			seen[u.Year] = true
		}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

func exportHeader(years []int) []string {
	header := []string{colID, colDescription, colCategory, colSubCategory, colLowAlertQty}
	for _, year := range years {
		header = append(header, usagePrefix+strconv.Itoa(year))
	}
	return append(header,
		colLocation, colSubLocation, colQty, colSource, colPONumber, colDateReceived)
}

// columnIndex maps header names to positions and collects USAGE_ columns.
type columnIndex struct {
	byName map[string]int
	usage  map[int]int // column position -> year
}

func indexHeader(header []string) (*columnIndex, error) {
	idx := &columnIndex{byName: map[string]int{}, usage: map[int]int{}}
	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(name))
		if strings.HasPrefix(name, usagePrefix) {
			year, err := strconv.Atoi(strings.TrimPrefix(name, usagePrefix))
			if err != nil {
				return nil, fmt.Errorf("bad usage column %q", name)
			}
			idx.usage[i] = year
			continue
		}
		idx.byName[name] = i
	}
	for _, required := range []string{colID, colDescription} {
		if _, ok := idx.byName[required]; !ok {
			return nil, fmt.Errorf("missing required column %s", required)
		}
	}
	return idx, nil
}

func (idx *columnIndex) value(record []string, name string) string {
	i, ok := idx.byName[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (idx *columnIndex) usageFor(record []string) []item.UsageYear {
	var usage []item.UsageYear
	for i, year := range idx.usage {
		if i >= len(record) {
			continue
		}
		raw := strings.TrimSpace(record[i])
		if raw == "" {
			continue
		}
		amount, err := strconv.Atoi(raw)
		if err != nil {
			continue // a malformed usage cell degrades to "no data for that year"
		}
		usage = append(usage, item.UsageYear{Year: year, Usage: amount})
	}
	return item.NormalizeUsage(usage)
}
