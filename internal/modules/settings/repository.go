package settings

import "context"

// Repository defines category color storage.
type Repository interface {
	Colors(ctx context.Context) (CategoryColors, error)
	// ReplaceColors swaps the whole mapping.
	ReplaceColors(ctx context.Context, colors CategoryColors) error
}
