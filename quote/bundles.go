package quote

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"firequote/catalog"
	"firequote/models"
	"firequote/services"
	"firequote/storage"
)

// Bundles is the bundle library: catalog bundles plus custom bundles, with
// persisted usage counts.
type Bundles struct {
	catalog catalog.Catalog
	store   storage.Store
	logger  *zap.Logger

	mu     sync.Mutex
	custom []models.EquipmentBundle
	usage  map[string]int
}

// NewBundles returns a library over the catalog bundles.
func NewBundles(cat catalog.Catalog, store storage.Store, logger *zap.Logger) *Bundles {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bundles{catalog: cat, store: store, logger: logger, usage: make(map[string]int)}
}

// Load reads custom bundles and usage counts. Unreadable data is logged and
// treated as empty.
func (b *Bundles) Load() {
	var custom []models.EquipmentBundle
	if _, err := storage.LoadJSON(b.store, storage.KeyCustomBundles, &custom); err != nil {
		b.logger.Error("failed to load custom bundles", zap.String("key", storage.KeyCustomBundles), zap.Error(err))
		custom = nil
	}
	usage := map[string]int{}
	if _, err := storage.LoadJSON(b.store, storage.KeyBundleUsage, &usage); err != nil {
		b.logger.Error("failed to load bundle usage", zap.String("key", storage.KeyBundleUsage), zap.Error(err))
		usage = map[string]int{}
	}
	if usage == nil {
		usage = map[string]int{}
	}
	for i := range custom {
		custom[i].IsCustom = true
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.custom = custom
	b.usage = usage
}

// allLocked returns catalog and custom bundles with usage and base price filled
// in, in definition order.
func (b *Bundles) allLocked() []models.EquipmentBundle {
	out := append(b.catalog.Bundles(), b.custom...)
	for i := range out {
		out[i].UsageCount = b.usage[out[i].ID]
		out[i].TotalBasePrice = services.BundleBasePrice(out[i].Items, b.catalog.Lookup)
	}
	return out
}

// List returns the bundles in category, or all bundles when category is
// empty, most used first.
func (b *Bundles) List(category models.BundleCategory) []models.EquipmentBundle {
	b.mu.Lock()
	all := b.allLocked()
	b.mu.Unlock()

	out := make([]models.EquipmentBundle, 0, len(all))
	for _, bundle := range all {
		if category == "" || bundle.Category == category {
			out = append(out, bundle)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UsageCount > out[j].UsageCount
	})
	return out
}

// Find returns the bundle with id.
func (b *Bundles) Find(id string) (models.EquipmentBundle, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, bundle := range b.allLocked() {
		if bundle.ID == id {
			return bundle, true
		}
	}
	return models.EquipmentBundle{}, false
}

// CategoryCount is one entry of the bundle category filter.
type CategoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

var bundleCategoryNames = map[models.BundleCategory]string{
	models.BundleResidential: "Residential",
	models.BundleCommercial:  "Commercial",
	models.BundleIndustrial:  "Industrial",
	models.BundleSpecialty:   "Specialty",
}

// Categories returns the "all" entry followed by each bundle category with
// its bundle count.
func (b *Bundles) Categories() []CategoryCount {
	bundles := b.List("")
	out := []CategoryCount{{ID: "all", Name: "All Bundles", Count: len(bundles)}}
	for _, c := range models.BundleCategories {
		n := 0
		for _, bundle := range bundles {
			if bundle.Category == c {
				n++
			}
		}
		out = append(out, CategoryCount{ID: string(c), Name: bundleCategoryNames[c], Count: n})
	}
	return out
}

// RecordUse increments and persists the usage count of id and returns the
// new count.
func (b *Bundles) RecordUse(id string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.usage[id]++
	if err := storage.SaveJSON(b.store, storage.KeyBundleUsage, b.usage); err != nil {
		b.logger.Error("failed to save bundle usage", zap.String("bundle_id", id), zap.Error(err))
	}
	return b.usage[id]
}

// Usage returns the recorded usage count of id.
func (b *Bundles) Usage(id string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.usage[id]
}

// PreviewLine is one priced line of a bundle preview.
type PreviewLine struct {
	Equipment  models.Equipment `json:"equipment"`
	Quantity   int              `json:"quantity"`
	Notes      string           `json:"notes,omitempty"`
	UnitPrice  float64          `json:"unitPrice"`
	TotalPrice float64          `json:"totalPrice"`
}

// BundlePreview prices a bundle without touching the quote.
type BundlePreview struct {
	BundleID string        `json:"bundleId"`
	Lines    []PreviewLine `json:"lines"`
	// Original is the subtotal at the bundle's own quantities.
	Original float64 `json:"original"`
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
	Skipped  []int   `json:"skipped,omitempty"`
}

// Preview prices bundle with overrides at formulas f.
func Preview(bundle models.EquipmentBundle, overrides map[int]int, lookup func(int) (models.Equipment, bool), f models.Formulas) BundlePreview {
	p := BundlePreview{BundleID: bundle.ID, Lines: []PreviewLine{}}
	for _, bi := range bundle.Items {
		e, ok := lookup(bi.EquipmentID)
		if !ok {
			p.Skipped = append(p.Skipped, bi.EquipmentID)
			continue
		}
		qty := effectiveQuantity(bi, overrides)
		if qty < 0 {
			qty = 0
		}
		unit := services.UnitPrice(e, f)
		line := PreviewLine{
			Equipment:  e,
			Quantity:   qty,
			Notes:      bi.Notes,
			UnitPrice:  unit,
			TotalPrice: unit * float64(qty),
		}
		p.Lines = append(p.Lines, line)
		p.Subtotal += line.TotalPrice
		p.Original += unit * float64(bi.Quantity)
	}
	p.GST = services.Tax(p.Subtotal, f)
	p.Total = p.Subtotal + p.GST
	return p
}
