package models

// LineItem is one equipment entry on the working quote. UnitPrice is fixed
// when the item is first added; TotalPrice is always Quantity * UnitPrice.
type LineItem struct {
	Equipment  Equipment `json:"equipment"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	TotalPrice float64   `json:"totalPrice"`
}

// Recalc refreshes TotalPrice from Quantity and UnitPrice.
func (li *LineItem) Recalc() {
	li.TotalPrice = float64(li.Quantity) * li.UnitPrice
}
