package catalog_test

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"firequote/catalog"
	"firequote/models"
	"firequote/testhelpers"
)

func TestFromRecords_Seeded(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	c := catalog.FromRecords(app, zaptest.NewLogger(t))
	want := catalog.Default()

	if len(c.Equipment()) != len(want.Equipment()) {
		t.Errorf("equipment count = %d, want %d", len(c.Equipment()), len(want.Equipment()))
	}
	if len(c.Bundles()) != len(want.Bundles()) {
		t.Errorf("bundle count = %d, want %d", len(c.Bundles()), len(want.Bundles()))
	}
	if c.Bundles()[0].ID != want.Bundles()[0].ID {
		t.Errorf("bundle order not preserved: %q", c.Bundles()[0].ID)
	}
	if c.Formulas() != models.DefaultFormulas() {
		t.Errorf("Formulas() = %+v", c.Formulas())
	}
}

func TestFromRecords_EditedData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestEquipment(t, app, models.Equipment{ID: 7, Name: "Aspirating Detector", Category: "Detection Devices", BasePrice: 4000, Unit: "each"})
	testhelpers.CreateTestBundle(t, app, models.EquipmentBundle{
		ID:       "custom-1",
		Name:     "Server Room",
		Category: models.BundleSpecialty,
		Items:    []models.BundleItem{{EquipmentID: 7, Quantity: 2}},
	})
	testhelpers.CreateTestFormulas(t, app, models.Formulas{GSTRate: 0.1, MaterialMarkup: 2})

	c := catalog.FromRecords(app, nil)

	e, ok := c.Lookup(7)
	if !ok || e.BasePrice != 4000 {
		t.Fatalf("Lookup(7) = %+v, %v", e, ok)
	}
	if c.Formulas().MaterialMarkup != 2 {
		t.Errorf("MaterialMarkup = %v, want 2", c.Formulas().MaterialMarkup)
	}
	b := c.Bundles()
	if len(b) != 1 || b[0].TotalBasePrice != 8000 {
		t.Errorf("unexpected bundles: %+v", b)
	}
}

func TestFromRecords_FallsBack(t *testing.T) {
	t.Run("empty collections", func(t *testing.T) {
		app := testhelpers.NewTestApp(t)
		c := catalog.FromRecords(app, nil)
		if len(c.Equipment()) != len(catalog.Default().Equipment()) {
			t.Error("expected built-in catalog for empty collections")
		}
	})

	t.Run("invalid formulas", func(t *testing.T) {
		app := testhelpers.NewTestApp(t)
		testhelpers.CreateTestEquipment(t, app, models.Equipment{ID: 1, Name: "Panel", Category: "Control Panels", BasePrice: 100, Unit: "each"})
		testhelpers.CreateTestFormulas(t, app, models.Formulas{GSTRate: 0.1, MaterialMarkup: -1})

		c := catalog.FromRecords(app, nil)
		if c.Formulas() != models.DefaultFormulas() {
			t.Errorf("expected default formulas, got %+v", c.Formulas())
		}
		if _, ok := c.Lookup(1); !ok {
			t.Error("edited equipment should still be used")
		}
	})
}
