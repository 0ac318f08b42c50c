package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"firequote/catalog"
	"firequote/models"
	"firequote/storage"
)

// maxEntryBytes bounds a single stored JSON document. The client directory
// at its cap is the largest entry.
const maxEntryBytes = 5 << 20

// Setup programmatically creates/ensures the key-value entry collection and
// the catalog collections exist.
func Setup(app *pocketbase.PocketBase) error {
	if _, err := ensureCollection(app, storage.EntriesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true, Max: 200})
		c.Fields.Add(&core.TextField{Name: "value", Max: maxEntryBytes})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_kv_entries_key", true, "key", "")
	}); err != nil {
		return err
	}

	if _, err := ensureCollection(app, catalog.CategoriesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "category_id", Required: true, OnlyInt: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
	}); err != nil {
		return err
	}

	if _, err := ensureCollection(app, catalog.EquipmentCollection, func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "equipment_id", Required: true, OnlyInt: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.NumberField{Name: "base_price", Min: floatPtr(0)})
		c.Fields.Add(&core.TextField{Name: "unit", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.AddIndex("idx_equipment_equipment_id", true, "equipment_id", "")
	}); err != nil {
		return err
	}

	bundleCategories := make([]string, len(models.BundleCategories))
	for i, bc := range models.BundleCategories {
		bundleCategories[i] = string(bc)
	}
	if _, err := ensureCollection(app, catalog.BundlesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "bundle_id", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    bundleCategories,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.JSONField{Name: "items", Required: true})
		c.AddIndex("idx_bundles_bundle_id", true, "bundle_id", "")
	}); err != nil {
		return err
	}

	if _, err := ensureCollection(app, catalog.FormulasCollection, func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "gst_rate", Min: floatPtr(0), Max: floatPtr(1)})
		c.Fields.Add(&core.NumberField{Name: "material_markup", Required: true})
		c.Fields.Add(&core.NumberField{Name: "labor_rate"})
		c.Fields.Add(&core.NumberField{Name: "overheads"})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	}); err != nil {
		return err
	}

	return nil
}

// ensureCollection returns the named collection, creating it with the
// given fields when it does not exist yet.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	return collection, nil
}

func floatPtr(f float64) *float64 { return &f }
