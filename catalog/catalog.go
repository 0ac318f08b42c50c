// Package catalog supplies the static reference data the quoting engine
// prices against: equipment, categories, bundle definitions and formulas.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"firequote/models"
	"firequote/services"
)

// Catalog is the read-only lookup consumed by the engine.
type Catalog interface {
	Equipment() []models.Equipment
	Categories() []models.Category
	Bundles() []models.EquipmentBundle
	Formulas() models.Formulas
	Lookup(id int) (models.Equipment, bool)
}

// Data is the serialised catalog shape.
type Data struct {
	Categories []models.Category        `json:"categories"`
	Equipment  []models.Equipment       `json:"equipment"`
	Bundles    []models.EquipmentBundle `json:"bundles"`
	Formulas   models.Formulas          `json:"formulas"`
}

//go:embed defaults.json
var defaultsJSON []byte

// DefaultData decodes the built-in catalog.
func DefaultData() (Data, error) {
	var d Data
	if err := json.Unmarshal(defaultsJSON, &d); err != nil {
		return Data{}, fmt.Errorf("decode default catalog: %w", err)
	}
	return d, nil
}

// Static is an in-memory Catalog.
type Static struct {
	data Data
	byID map[int]models.Equipment
}

// New builds a Static catalog. Bundle base prices are recomputed from the
// equipment list.
func New(d Data) *Static {
	d.Bundles = append([]models.EquipmentBundle(nil), d.Bundles...)
	s := &Static{data: d, byID: make(map[int]models.Equipment, len(d.Equipment))}
	for _, e := range d.Equipment {
		s.byID[e.ID] = e
	}
	for i := range s.data.Bundles {
		s.data.Bundles[i].TotalBasePrice = services.BundleBasePrice(s.data.Bundles[i].Items, s.Lookup)
	}
	return s
}

// Default returns the built-in catalog. The embedded data is fixed at
// build time so a decode failure panics.
func Default() *Static {
	d, err := DefaultData()
	if err != nil {
		panic(err)
	}
	return New(d)
}

func (s *Static) Equipment() []models.Equipment {
	return append([]models.Equipment(nil), s.data.Equipment...)
}

func (s *Static) Categories() []models.Category {
	return append([]models.Category(nil), s.data.Categories...)
}

func (s *Static) Bundles() []models.EquipmentBundle {
	out := make([]models.EquipmentBundle, len(s.data.Bundles))
	for i, b := range s.data.Bundles {
		b.Items = append([]models.BundleItem(nil), b.Items...)
		out[i] = b
	}
	return out
}

func (s *Static) Formulas() models.Formulas { return s.data.Formulas }

// Lookup resolves an equipment id.
func (s *Static) Lookup(id int) (models.Equipment, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Search returns the equipment whose name or description contains term,
// ignoring case. An empty term matches everything.
func Search(equipment []models.Equipment, term string) []models.Equipment {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Equipment, 0, len(equipment))
	for _, e := range equipment {
		if term == "" ||
			strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.Description), term) {
			out = append(out, e)
		}
	}
	return out
}
