package location

import (
	"context"
	"errors"
	"testing"
)

func TestReplaceValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository(nil))
	ctx := context.Background()

	cases := []struct {
		name      string
		locations []Location
	}{
		{"missing id", []Location{{Name: "MAIN"}}},
		{"missing name", []Location{{ID: "L1"}}},
		{"duplicate id", []Location{{ID: "L1", Name: "MAIN"}, {ID: "L1", Name: "ANNEX"}}},
		{"duplicate name", []Location{{ID: "L1", Name: "MAIN"}, {ID: "L2", Name: "MAIN"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Replace(ctx, tc.locations); err == nil {
				t.Error("Replace succeeded, want error")
			}
		})
	}
}

func TestReplaceInstallsNewSet(t *testing.T) {
	svc := NewService(NewMemoryRepository([]Location{{ID: "OLD", Name: "RETIRED"}}))
	ctx := context.Background()

	next := []Location{
		{ID: "L1", Name: "MAIN", SubLocationPrompt: "SHELF or RACK"},
		{ID: "L2", Name: "ANNEX"},
	}
	if err := svc.Replace(ctx, next); err != nil {
		t.Fatal(err)
	}

	got, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("List = %d locations, want 2", len(got))
	}
	if _, err := svc.Get(ctx, "OLD"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get retired id = %v, want ErrNotFound", err)
	}
	main, err := svc.Get(ctx, "L1")
	if err != nil {
		t.Fatal(err)
	}
	if main.SubLocationPrompt != "SHELF or RACK" {
		t.Errorf("SubLocationPrompt = %q", main.SubLocationPrompt)
	}
}
