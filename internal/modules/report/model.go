package report

// LowStockEntry is one item currently at or below its alert threshold.
type LowStockEntry struct {
	ItemID        string `json:"item_id"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Threshold     int    `json:"threshold"`
	TotalQuantity int    `json:"total_quantity"`
	ETR           string `json:"etr"`
}

// Label is the payload a barcode/label renderer consumes. Rendering itself
// happens outside this service.
type Label struct {
	ItemID      string `json:"item_id"`
	Description string `json:"description"`
	// BarcodeData is the string encoded into the barcode; the item id.
	BarcodeData string `json:"barcode_data"`
	// Locations is a short display summary, e.g. "MAIN: 12, ANNEX: 3".
	Locations string `json:"locations"`
}
