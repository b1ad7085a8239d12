package view

import (
	"github.com/google/uuid"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/location"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/settings"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/stock"
)

// UnknownLocationLabel is shown when a stock row references a location id
// that is missing from the reference set.
const UnknownLocationLabel = "UNKNOWN LOCATION"

// SortKey selects the item attribute the view is ordered by.
type SortKey string

const (
	SortByID          SortKey = "id"
	SortByDescription SortKey = "description"
	SortByCategory    SortKey = "category"
	SortByQuantity    SortKey = "quantityInView"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// GroupMode selects how the sorted list is partitioned. At most one mode is
// active at a time.
type GroupMode string

const (
	GroupNone       GroupMode = "none"
	GroupByCategory GroupMode = "category"
	GroupByLocation GroupMode = "location"
)

// State holds the view parameters a derivation is computed for.
type State struct {
	Search         string        `json:"search"`
	CategoryFilter string        `json:"category_filter"`
	LocationFilter string        `json:"location_filter"`
	SortKey        SortKey       `json:"sort_key"`
	SortDir        SortDirection `json:"sort_dir"`
	GroupMode      GroupMode     `json:"group_mode"`
}

// WithSortKey returns the state after the user selects a sort key: a new key
// always starts ascending, reselecting the current key flips the direction.
func (s State) WithSortKey(key SortKey) State {
	if s.SortKey == key {
		if s.SortDir == Descending {
			s.SortDir = Ascending
		} else {
			s.SortDir = Descending
		}
		return s
	}
	s.SortKey = key
	s.SortDir = Ascending
	return s
}

// Input is everything a derivation reads. The engine never mutates it.
type Input struct {
	Items     []item.Item
	Stock     []stock.Row
	Locations []location.Location
	Colors    settings.CategoryColors
}

// LocationStock is one stock row joined with its location's display name.
type LocationStock struct {
	RowID             uuid.UUID `json:"row_id"`
	LocationID        string    `json:"location_id"`
	LocationName      string    `json:"location_name"`
	SubLocationDetail string    `json:"sub_location_detail,omitempty"`
	Quantity          int       `json:"quantity"`
	Source            string    `json:"source"`
	PONumber          string    `json:"po_number,omitempty"`
	DateReceived      string    `json:"date_received,omitempty"`
}

// Row is one fully annotated item as the presentation layer renders it.
type Row struct {
	Item              item.Item `json:"item"`
	EffectiveCategory string    `json:"effective_category"`
	TotalQuantity     int       `json:"total_quantity"`
	// QuantityInView always equals TotalQuantity: the location filter narrows
	// the item set, never a per-item quantity.
	QuantityInView     int             `json:"quantity_in_view"`
	LocationsWithStock []LocationStock `json:"locations_with_stock"`
	ETR                string          `json:"etr"`
	IsLowStock         bool            `json:"is_low_stock"`
	// AccentColor is empty when neither the sub-category nor the category has
	// a configured color.
	AccentColor  string `json:"accent_color,omitempty"`
	StockTooltip string `json:"stock_tooltip"`
}

// GroupEntry is a row inside a group. In location mode each entry displays
// that single stock row's quantity; in category mode it displays the item
// total.
type GroupEntry struct {
	Row
	DisplayQuantity int `json:"display_quantity"`
}

// Group is one partition of the sorted row list.
type Group struct {
	Key     string       `json:"key"`
	Entries []GroupEntry `json:"entries"`
}

// Model is the full derived view. Rows is always the filtered, sorted,
// pre-grouping item set (select-all and selection counts operate on it);
// Groups is populated only when a group mode is active. LowStockCount covers
// the complete item collection regardless of active filters.
type Model struct {
	Rows          []Row     `json:"rows"`
	Groups        []Group   `json:"groups,omitempty"`
	GroupMode     GroupMode `json:"group_mode"`
	LowStockCount int       `json:"low_stock_count"`
}
