package item

// UncategorizedLabel is the sentinel category shown for items without one.
const UncategorizedLabel = "UNCATEGORIZED"

// UsageYear is one year of recorded usage for an item.
type UsageYear struct {
	Year  int `json:"year"`
	Usage int `json:"usage"`
}

// Item is one inventory item. The ID is user-visible, globally unique and
// immutable once created.
type Item struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	SubCategory string `json:"sub_category,omitempty"`
	// PriorUsage holds at most one entry per year, ordered by year ascending.
	PriorUsage []UsageYear `json:"prior_usage,omitempty"`
	// LowAlertQuantity is the low-stock threshold. Nil means the item is never
	// flagged low, regardless of quantity.
	LowAlertQuantity *int `json:"low_alert_quantity,omitempty"`
}

// EffectiveCategory returns the category used for display, grouping and
// filtering, falling back to the UNCATEGORIZED sentinel.
func (i Item) EffectiveCategory() string {
	if i.Category == "" {
		return UncategorizedLabel
	}
	return i.Category
}
