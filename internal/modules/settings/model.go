package settings

// CategoryColors maps a category or sub-category label to a display color
// (hex string). Purely advisory; lookup only.
type CategoryColors map[string]string
