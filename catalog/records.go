package catalog

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"

	"firequote/models"
)

// Collection names holding the editable catalog.
const (
	EquipmentCollection  = "equipment"
	CategoriesCollection = "categories"
	BundlesCollection    = "bundles"
	FormulasCollection   = "formulas"
)

// FromRecords loads the catalog from the PocketBase collections maintained
// in the admin dashboard. Missing or unreadable data falls back to the
// built-in catalog; invalid formulas fall back to the default formulas.
func FromRecords(app *pocketbase.PocketBase, logger *zap.Logger) *Static {
	if logger == nil {
		logger = zap.NewNop()
	}

	d, err := readRecords(app)
	if err != nil {
		logger.Error("failed to load catalog, using built-in data", zap.Error(err))
		return Default()
	}
	if len(d.Equipment) == 0 {
		logger.Warn("catalog has no equipment, using built-in data")
		return Default()
	}
	if err := d.Formulas.Validate(); err != nil {
		logger.Warn("invalid pricing formulas, using defaults", zap.Error(err))
		d.Formulas = models.DefaultFormulas()
	}
	return New(d)
}

func readRecords(app *pocketbase.PocketBase) (Data, error) {
	var d Data

	equipment, err := app.FindRecordsByFilter(EquipmentCollection, "id != ''", "equipment_id", 0, 0)
	if err != nil {
		return Data{}, fmt.Errorf("read equipment: %w", err)
	}
	for _, r := range equipment {
		d.Equipment = append(d.Equipment, models.Equipment{
			ID:          r.GetInt("equipment_id"),
			Name:        r.GetString("name"),
			Category:    r.GetString("category"),
			BasePrice:   r.GetFloat("base_price"),
			Unit:        r.GetString("unit"),
			Description: r.GetString("description"),
		})
	}

	categories, err := app.FindRecordsByFilter(CategoriesCollection, "id != ''", "category_id", 0, 0)
	if err != nil {
		return Data{}, fmt.Errorf("read categories: %w", err)
	}
	for _, r := range categories {
		d.Categories = append(d.Categories, models.Category{
			ID:          r.GetInt("category_id"),
			Name:        r.GetString("name"),
			Description: r.GetString("description"),
		})
	}

	bundles, err := app.FindRecordsByFilter(BundlesCollection, "id != ''", "sort_order", 0, 0)
	if err != nil {
		return Data{}, fmt.Errorf("read bundles: %w", err)
	}
	for _, r := range bundles {
		b := models.EquipmentBundle{
			ID:          r.GetString("bundle_id"),
			Name:        r.GetString("name"),
			Description: r.GetString("description"),
			Category:    models.BundleCategory(r.GetString("category")),
		}
		if err := r.UnmarshalJSONField("items", &b.Items); err != nil {
			return Data{}, fmt.Errorf("decode items of bundle %s: %w", b.ID, err)
		}
		d.Bundles = append(d.Bundles, b)
	}

	formulas, err := app.FindRecordsByFilter(FormulasCollection, "id != ''", "-updated", 1, 0)
	if err != nil {
		return Data{}, fmt.Errorf("read formulas: %w", err)
	}
	d.Formulas = models.DefaultFormulas()
	if len(formulas) > 0 {
		r := formulas[0]
		d.Formulas = models.Formulas{
			GSTRate:        r.GetFloat("gst_rate"),
			MaterialMarkup: r.GetFloat("material_markup"),
			LaborRate:      r.GetFloat("labor_rate"),
			Overheads:      r.GetFloat("overheads"),
		}
	}

	return d, nil
}
