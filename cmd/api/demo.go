package main

import (
	"github.com/google/uuid"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/location"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/settings"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/stock"
)

// Demo state for STORAGE_BACKEND=memory: a small but representative inventory
// covering usage histories, low-stock thresholds, sub-locations and
// purchase-order stock.

func intPtr(v int) *int { return &v }

func demoLocations() []location.Location {
	return []location.Location{
		{ID: "LOC-MAIN", Name: "MAIN WAREHOUSE", SubLocationPrompt: "SHELF or RACK"},
		{ID: "LOC-ANNEX", Name: "ANNEX"},
		{ID: "LOC-YARD", Name: "YARD"},
	}
}

func demoItems() []item.Item {
	return []item.Item{
		{
			ID:          "CBL-4-600V",
			Description: "600V #4 AWG copper cable, per foot",
			Category:    "CABLE",
			SubCategory: "COPPER",
			PriorUsage: []item.UsageYear{
				{Year: 2023, Usage: 1000},
				{Year: 2024, Usage: 1100},
				{Year: 2025, Usage: 1200},
			},
			LowAlertQuantity: intPtr(500),
		},
		{
			ID:          "XFMR-25KVA",
			Description: "25 kVA pole-mount transformer",
			Category:    "TRANSFORMER",
			PriorUsage: []item.UsageYear{
				{Year: 2024, Usage: 18},
				{Year: 2025, Usage: 24},
			},
			LowAlertQuantity: intPtr(4),
		},
		{
			ID:          "INS-PIN-15",
			Description: "15 kV pin insulator",
			Category:    "HARDWARE",
			SubCategory: "INSULATOR",
		},
		{
			ID:          "MISC-TAPE",
			Description: "Rubber splicing tape",
		},
	}
}

func demoStock() []stock.Row {
	return []stock.Row{
		{
			ID: uuid.New(), ItemID: "CBL-4-600V", LocationID: "LOC-MAIN",
			SubLocationDetail: "RACK 7", Quantity: 650, Source: stock.SourceOnHand,
		},
		{
			ID: uuid.New(), ItemID: "CBL-4-600V", LocationID: "LOC-ANNEX",
			Quantity: 325, Source: stock.SourceOnHand,
		},
		{
			ID: uuid.New(), ItemID: "XFMR-25KVA", LocationID: "LOC-YARD",
			Quantity: 3, Source: stock.SourceOnHand,
		},
		{
			ID: uuid.New(), ItemID: "XFMR-25KVA", LocationID: "LOC-YARD",
			Quantity: 6, Source: stock.SourcePurchaseOrder,
			PONumber: "PO-10412", DateReceived: "2026-08-02",
		},
		{
			ID: uuid.New(), ItemID: "INS-PIN-15", LocationID: "LOC-MAIN",
			SubLocationDetail: "SHELF B2", Quantity: 144, Source: stock.SourceOnHand,
		},
	}
}

func demoColors() settings.CategoryColors {
	return settings.CategoryColors{
		"CABLE":       "#1565c0",
		"COPPER":      "#b87333",
		"TRANSFORMER": "#2e7d32",
		"HARDWARE":    "#6d4c41",
	}
}
