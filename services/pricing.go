// Package services provides pricing and document export for fire-safety quotes.
package services

import "firequote/models"

// UnitPrice is the sale price of one unit: base price times material markup.
func UnitPrice(e models.Equipment, f models.Formulas) float64 {
	return e.BasePrice * f.MaterialMarkup
}

func LineTotal(item models.LineItem) float64 {
	return float64(item.Quantity) * item.UnitPrice
}

func Subtotal(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineTotal(item)
	}
	return sum
}

// Tax is the GST payable on a subtotal.
func Tax(subtotal float64, f models.Formulas) float64 {
	return subtotal * f.GSTRate
}

type QuoteTotals struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

// CalcQuoteTotals derives subtotal, GST and grand total for the given items.
func CalcQuoteTotals(items []models.LineItem, f models.Formulas) QuoteTotals {
	subtotal := Subtotal(items)
	gst := Tax(subtotal, f)
	return QuoteTotals{
		Subtotal: subtotal,
		GST:      gst,
		Total:    subtotal + gst,
	}
}

// BundleBasePrice sums base price times quantity over the bundle lines that
// resolve. Unresolvable equipment contributes nothing.
func BundleBasePrice(items []models.BundleItem, lookup func(id int) (models.Equipment, bool)) float64 {
	var sum float64
	for _, bi := range items {
		if e, ok := lookup(bi.EquipmentID); ok {
			sum += e.BasePrice * float64(bi.Quantity)
		}
	}
	return sum
}
