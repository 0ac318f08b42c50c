package services

import (
	"math"
	"testing"

	"firequote/models"
)

var (
	panel    = models.Equipment{ID: 1, Name: "Fire Indicator Panel", BasePrice: 2500, Unit: "each"}
	detector = models.Equipment{ID: 2, Name: "Smoke Detectors", BasePrice: 120, Unit: "each"}
)

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		markup float64
		expect float64
	}{
		{"panel at 1.5x", 2500, 1.5, 3750},
		{"detector at 1.5x", 120, 1.5, 180},
		{"no markup", 65, 1, 65},
		{"zero base", 0, 1.5, 0},
		{"decimal markup", 100, 1.25, 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitPrice(models.Equipment{BasePrice: tt.base}, models.Formulas{MaterialMarkup: tt.markup})
			if math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("UnitPrice(%v, %v) = %v, want %v", tt.base, tt.markup, got, tt.expect)
			}
		})
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name   string
		item   models.LineItem
		expect float64
	}{
		{"single", models.LineItem{Quantity: 1, UnitPrice: 3750}, 3750},
		{"two panels", models.LineItem{Quantity: 2, UnitPrice: 3750}, 7500},
		{"decimal price", models.LineItem{Quantity: 3, UnitPrice: 97.5}, 292.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineTotal(tt.item); math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("LineTotal() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestCalcQuoteTotals(t *testing.T) {
	f := models.Formulas{MaterialMarkup: 1.5, GSTRate: 0.1}
	tests := []struct {
		name           string
		items          []models.LineItem
		expectSubtotal float64
		expectGST      float64
		expectTotal    float64
	}{
		{
			name: "panel and detector",
			items: []models.LineItem{
				{Equipment: panel, Quantity: 1, UnitPrice: 3750},
				{Equipment: detector, Quantity: 1, UnitPrice: 180},
			},
			expectSubtotal: 3930,
			expectGST:      393,
			expectTotal:    4323,
		},
		{
			name: "quantities multiply",
			items: []models.LineItem{
				{Equipment: panel, Quantity: 2, UnitPrice: 3750},
				{Equipment: detector, Quantity: 10, UnitPrice: 180},
			},
			expectSubtotal: 9300,
			expectGST:      930,
			expectTotal:    10230,
		},
		{"empty items", []models.LineItem{}, 0, 0, 0},
		{"nil items", nil, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcQuoteTotals(tt.items, f)
			if math.Abs(got.Subtotal-tt.expectSubtotal) > 0.001 {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.expectSubtotal)
			}
			if math.Abs(got.GST-tt.expectGST) > 0.001 {
				t.Errorf("GST = %v, want %v", got.GST, tt.expectGST)
			}
			if math.Abs(got.Total-tt.expectTotal) > 0.001 {
				t.Errorf("Total = %v, want %v", got.Total, tt.expectTotal)
			}
		})
	}
}

func TestTax(t *testing.T) {
	got := Tax(3930, models.Formulas{GSTRate: 0.1})
	if math.Abs(got-393) > 0.001 {
		t.Errorf("Tax(3930) = %v, want 393", got)
	}
	if got := Tax(3930, models.Formulas{}); got != 0 {
		t.Errorf("Tax with zero rate = %v, want 0", got)
	}
}

func TestBundleBasePrice(t *testing.T) {
	lookup := func(id int) (models.Equipment, bool) {
		switch id {
		case 1:
			return panel, true
		case 2:
			return detector, true
		}
		return models.Equipment{}, false
	}
	items := []models.BundleItem{
		{EquipmentID: 1, Quantity: 1},
		{EquipmentID: 2, Quantity: 4},
		{EquipmentID: 99, Quantity: 7},
	}
	got := BundleBasePrice(items, lookup)
	if math.Abs(got-2980) > 0.001 {
		t.Errorf("BundleBasePrice = %v, want 2980", got)
	}
}
