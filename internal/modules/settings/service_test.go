package settings

import (
	"context"
	"testing"
)

func TestReplaceColorsValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository(nil))
	ctx := context.Background()

	cases := []struct {
		name    string
		colors  CategoryColors
		wantErr bool
	}{
		{"six digit hex", CategoryColors{"WIRE": "#ff8800"}, false},
		{"three digit hex", CategoryColors{"WIRE": "#f80"}, false},
		{"uppercase hex", CategoryColors{"WIRE": "#FF8800"}, false},
		{"missing hash", CategoryColors{"WIRE": "ff8800"}, true},
		{"bad length", CategoryColors{"WIRE": "#ff88"}, true},
		{"non-hex digits", CategoryColors{"WIRE": "#gggggg"}, true},
		{"empty label", CategoryColors{"": "#ff8800"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ReplaceColors(ctx, tc.colors)
			if (err != nil) != tc.wantErr {
				t.Errorf("ReplaceColors = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestReplaceColorsOverwritesSet(t *testing.T) {
	svc := NewService(NewMemoryRepository(CategoryColors{"OLD": "#000"}))
	ctx := context.Background()

	if err := svc.ReplaceColors(ctx, CategoryColors{"WIRE": "#ff8800"}); err != nil {
		t.Fatal(err)
	}
	colors, err := svc.Colors(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := colors["OLD"]; ok {
		t.Error("old color survived replace")
	}
	if colors["WIRE"] != "#ff8800" {
		t.Errorf("colors = %v", colors)
	}
}
