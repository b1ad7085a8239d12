package location

// Location is a fixed reference place where stock can be held.
type Location struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	// SubLocationPrompt, when non-empty, is shown when entering stock at this
	// location and allows a free-text sub-location detail (e.g. "SHELF or RACK").
	SubLocationPrompt string `json:"sub_location_prompt,omitempty" db:"sub_location_prompt"`
}
