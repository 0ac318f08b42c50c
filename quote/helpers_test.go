package quote

import (
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"firequote/catalog"
	"firequote/clock"
	"firequote/models"
	"firequote/services"
	"firequote/storage"
)

var (
	testStart = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	panel    = models.Equipment{ID: 1, Name: "Fire Indicator Panel", Category: "Control Panels", BasePrice: 2500, Unit: "each"}
	detector = models.Equipment{ID: 2, Name: "Smoke Detectors", Category: "Detection Devices", BasePrice: 120, Unit: "each"}
	callPt   = models.Equipment{ID: 3, Name: "Manual Call Points", Category: "Manual Devices", BasePrice: 65, Unit: "each"}
)

func testCatalog() *catalog.Static {
	return catalog.New(catalog.Data{
		Equipment: []models.Equipment{panel, detector, callPt},
		Categories: []models.Category{
			{ID: 1, Name: "Control Panels"},
			{ID: 2, Name: "Detection Devices"},
			{ID: 3, Name: "Manual Devices"},
		},
		Bundles: []models.EquipmentBundle{
			{ID: "office", Name: "Office", Category: models.BundleCommercial, Items: []models.BundleItem{
				{EquipmentID: 1, Quantity: 1},
				{EquipmentID: 2, Quantity: 4},
			}},
			{ID: "home", Name: "Home", Category: models.BundleResidential, Items: []models.BundleItem{
				{EquipmentID: 2, Quantity: 2},
				{EquipmentID: 99, Quantity: 1},
				{EquipmentID: 3, Quantity: 1},
			}},
		},
		Formulas: models.DefaultFormulas(),
	})
}

// recordingExporter captures exported quotes.
type recordingExporter struct {
	quotes []models.Quote
	err    error
}

func (r *recordingExporter) Export(format services.Format, q models.Quote) (services.Document, error) {
	if r.err != nil {
		return services.Document{}, r.err
	}
	r.quotes = append(r.quotes, q)
	return services.Document{FileName: "Quote-" + q.Number + "." + string(format), Content: []byte("doc")}, nil
}

var errExportFailed = errors.New("printer on fire")

type sessionFixture struct {
	session  *Session
	store    *storage.Memory
	clock    *clock.Manual
	exporter *recordingExporter
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	fx := &sessionFixture{
		store:    storage.NewMemory(),
		clock:    clock.NewManual(testStart),
		exporter: &recordingExporter{},
	}
	fx.session = NewSession(Dependencies{
		Catalog:     testCatalog(),
		Store:       fx.store,
		Exporter:    fx.exporter,
		Clock:       fx.clock,
		Logger:      zaptest.NewLogger(t),
		QuoteNumber: func(time.Time) string { return "QT-20250314-001" },
	}, DefaultOptions())
	t.Cleanup(fx.session.Close)
	return fx
}

func assertTotalsConsistent(t *testing.T, items []models.LineItem) {
	t.Helper()
	for _, it := range items {
		if math.Abs(it.TotalPrice-float64(it.Quantity)*it.UnitPrice) > 0.001 {
			t.Errorf("item %d: total %.2f != %d x %.2f", it.Equipment.ID, it.TotalPrice, it.Quantity, it.UnitPrice)
		}
		if it.Quantity < 1 {
			t.Errorf("item %d has quantity %d", it.Equipment.ID, it.Quantity)
		}
	}
}
