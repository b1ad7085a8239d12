package stock

import "github.com/google/uuid"

// Source values for a stock row.
const (
	SourceOnHand        = "OH"
	SourcePurchaseOrder = "PO"
)

// Row is a quantity of one item at one location, optionally narrowed by a
// free-text sub-location detail. Mutation flows keep at most one row per
// (item, location, sub-location, source) and prune rows at quantity zero, so
// the view layer never observes a non-positive quantity.
type Row struct {
	ID                uuid.UUID `json:"id" db:"id"`
	ItemID            string    `json:"item_id" db:"item_id"`
	LocationID        string    `json:"location_id" db:"location_id"`
	SubLocationDetail string    `json:"sub_location_detail,omitempty" db:"sub_location_detail"`
	Quantity          int       `json:"quantity" db:"quantity"`
	Source            string    `json:"source" db:"source"`
	// PONumber and DateReceived are only meaningful when Source is "PO".
	PONumber     string `json:"po_number,omitempty" db:"po_number"`
	DateReceived string `json:"date_received,omitempty" db:"date_received"`
}

// SameSlot reports whether two rows occupy the same merge slot.
func (r Row) SameSlot(other Row) bool {
	return r.ItemID == other.ItemID &&
		r.LocationID == other.LocationID &&
		r.SubLocationDetail == other.SubLocationDetail &&
		r.Source == other.Source
}
