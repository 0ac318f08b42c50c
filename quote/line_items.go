package quote

import (
	"firequote/models"
	"firequote/services"
)

// LineItems is the ordered set of quote lines, at most one per equipment id.
// It is not safe for concurrent use; Session serialises access.
type LineItems struct {
	items []models.LineItem
	index map[int]int // equipment id -> position in items
}

// NewLineItems returns an empty collection.
func NewLineItems() *LineItems {
	return &LineItems{index: make(map[int]int)}
}

// Add puts one unit of e on the quote. A new line is priced at the current
// formulas; an existing line keeps the unit price it was added with.
func (l *LineItems) Add(e models.Equipment, f models.Formulas) models.LineItem {
	return l.AddQuantity(e, 1, f)
}

// AddQuantity merges qty units of e into the collection in one step.
// Non-positive quantities are ignored.
func (l *LineItems) AddQuantity(e models.Equipment, qty int, f models.Formulas) models.LineItem {
	if pos, ok := l.index[e.ID]; ok {
		if qty > 0 {
			item := &l.items[pos]
			item.Quantity += qty
			item.Recalc()
		}
		return l.items[pos]
	}
	if qty <= 0 {
		return models.LineItem{}
	}

	item := models.LineItem{
		Equipment: e,
		Quantity:  qty,
		UnitPrice: services.UnitPrice(e, f),
	}
	item.Recalc()
	l.index[e.ID] = len(l.items)
	l.items = append(l.items, item)
	return item
}

// SetQuantity sets the quantity of the line for equipmentID. A quantity of
// zero or less removes the line. It reports whether the line existed.
func (l *LineItems) SetQuantity(equipmentID, qty int) bool {
	pos, ok := l.index[equipmentID]
	if !ok {
		return false
	}
	if qty <= 0 {
		l.removeAt(pos)
		return true
	}
	item := &l.items[pos]
	item.Quantity = qty
	item.Recalc()
	return true
}

func (l *LineItems) removeAt(pos int) {
	delete(l.index, l.items[pos].Equipment.ID)
	l.items = append(l.items[:pos], l.items[pos+1:]...)
	for i := pos; i < len(l.items); i++ {
		l.index[l.items[i].Equipment.ID] = i
	}
}

// BundleResult reports what ApplyBundle did.
type BundleResult struct {
	BundleID string `json:"bundleId"`
	Applied  int    `json:"applied"`
	// Skipped lists equipment ids the catalog could not resolve.
	Skipped []int `json:"skipped,omitempty"`
}

// ApplyBundle merges every resolvable bundle line into the collection.
// overrides replaces the bundle quantity per equipment id.
func (l *LineItems) ApplyBundle(b models.EquipmentBundle, overrides map[int]int, lookup func(int) (models.Equipment, bool), f models.Formulas) BundleResult {
	res := BundleResult{BundleID: b.ID}
	for _, bi := range b.Items {
		e, ok := lookup(bi.EquipmentID)
		if !ok {
			res.Skipped = append(res.Skipped, bi.EquipmentID)
			continue
		}
		qty := effectiveQuantity(bi, overrides)
		if qty <= 0 {
			continue
		}
		l.AddQuantity(e, qty, f)
		res.Applied++
	}
	return res
}

func effectiveQuantity(bi models.BundleItem, overrides map[int]int) int {
	if q, ok := overrides[bi.EquipmentID]; ok {
		return q
	}
	return bi.Quantity
}

// Get returns the line for equipmentID.
func (l *LineItems) Get(equipmentID int) (models.LineItem, bool) {
	pos, ok := l.index[equipmentID]
	if !ok {
		return models.LineItem{}, false
	}
	return l.items[pos], true
}

// Items returns a copy of the lines in insertion order.
func (l *LineItems) Items() []models.LineItem {
	return append([]models.LineItem{}, l.items...)
}

func (l *LineItems) Len() int { return len(l.items) }

// Reset empties the collection.
func (l *LineItems) Reset() {
	l.items = nil
	l.index = make(map[int]int)
}

// Replace loads items, typically from a restored draft. Totals are
// recomputed, empty lines dropped and duplicate ids merged.
func (l *LineItems) Replace(items []models.LineItem) {
	l.Reset()
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if pos, ok := l.index[it.Equipment.ID]; ok {
			l.items[pos].Quantity += it.Quantity
			l.items[pos].Recalc()
			continue
		}
		it.Recalc()
		l.index[it.Equipment.ID] = len(l.items)
		l.items = append(l.items, it)
	}
}
