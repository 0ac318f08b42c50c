// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"firequote/catalog"
	"firequote/collections"
	"firequote/models"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	if err := collections.Setup(app); err != nil {
		t.Fatalf("failed to set up collections: %v", err)
	}

	return app
}

// NewSeededTestApp is NewTestApp with the built-in catalog copied into the
// catalog collections.
func NewSeededTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed test app: %v", err)
	}
	return app
}

// CreateTestEquipment creates an equipment record and returns it.
func CreateTestEquipment(t *testing.T, app *pocketbase.PocketBase, e models.Equipment) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(catalog.EquipmentCollection)
	if err != nil {
		t.Fatalf("failed to find equipment collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("equipment_id", e.ID)
	record.Set("name", e.Name)
	record.Set("category", e.Category)
	record.Set("base_price", e.BasePrice)
	record.Set("unit", e.Unit)
	record.Set("description", e.Description)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test equipment: %v", err)
	}

	return record
}

// CreateTestBundle creates a bundle record and returns it.
func CreateTestBundle(t *testing.T, app *pocketbase.PocketBase, b models.EquipmentBundle) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(catalog.BundlesCollection)
	if err != nil {
		t.Fatalf("failed to find bundles collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("bundle_id", b.ID)
	record.Set("name", b.Name)
	record.Set("description", b.Description)
	record.Set("category", string(b.Category))
	record.Set("items", b.Items)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test bundle: %v", err)
	}

	return record
}

// CreateTestFormulas creates a formulas record and returns it.
func CreateTestFormulas(t *testing.T, app *pocketbase.PocketBase, f models.Formulas) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(catalog.FormulasCollection)
	if err != nil {
		t.Fatalf("failed to find formulas collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("gst_rate", f.GSTRate)
	record.Set("material_markup", f.MaterialMarkup)
	record.Set("labor_rate", f.LaborRate)
	record.Set("overheads", f.Overheads)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test formulas: %v", err)
	}

	return record
}
