package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"firequote/catalog"
)

// Seed copies the built-in catalog into the catalog collections so it can be
// edited from the dashboard. It is safe to call on every startup because it
// returns early if any equipment records already exist.
func Seed(app *pocketbase.PocketBase) error {
	equipmentCol, err := app.FindCollectionByNameOrId(catalog.EquipmentCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find equipment collection: %w", err)
	}
	existing, err := app.FindAllRecords(equipmentCol)
	if err != nil {
		return fmt.Errorf("seed: could not query equipment: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	data, err := catalog.DefaultData()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	categoriesCol, err := app.FindCollectionByNameOrId(catalog.CategoriesCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find categories collection: %w", err)
	}
	bundlesCol, err := app.FindCollectionByNameOrId(catalog.BundlesCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find bundles collection: %w", err)
	}
	formulasCol, err := app.FindCollectionByNameOrId(catalog.FormulasCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find formulas collection: %w", err)
	}

	return app.RunInTransaction(func(txApp core.App) error {
		for _, c := range data.Categories {
			rec := core.NewRecord(categoriesCol)
			rec.Set("category_id", c.ID)
			rec.Set("name", c.Name)
			rec.Set("description", c.Description)
			if err := txApp.Save(rec); err != nil {
				return fmt.Errorf("seed: save category %q: %w", c.Name, err)
			}
		}

		for _, e := range data.Equipment {
			rec := core.NewRecord(equipmentCol)
			rec.Set("equipment_id", e.ID)
			rec.Set("name", e.Name)
			rec.Set("category", e.Category)
			rec.Set("base_price", e.BasePrice)
			rec.Set("unit", e.Unit)
			rec.Set("description", e.Description)
			if err := txApp.Save(rec); err != nil {
				return fmt.Errorf("seed: save equipment %q: %w", e.Name, err)
			}
		}

		for i, b := range data.Bundles {
			rec := core.NewRecord(bundlesCol)
			rec.Set("bundle_id", b.ID)
			rec.Set("sort_order", i+1)
			rec.Set("name", b.Name)
			rec.Set("description", b.Description)
			rec.Set("category", string(b.Category))
			rec.Set("items", b.Items)
			if err := txApp.Save(rec); err != nil {
				return fmt.Errorf("seed: save bundle %q: %w", b.ID, err)
			}
		}

		rec := core.NewRecord(formulasCol)
		rec.Set("gst_rate", data.Formulas.GSTRate)
		rec.Set("material_markup", data.Formulas.MaterialMarkup)
		rec.Set("labor_rate", data.Formulas.LaborRate)
		rec.Set("overheads", data.Formulas.Overheads)
		if err := txApp.Save(rec); err != nil {
			return fmt.Errorf("seed: save formulas: %w", err)
		}
		return nil
	})
}
