package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap/zaptest"

	"firequote/catalog"
	"firequote/clock"
	"firequote/models"
	"firequote/quote"
	"firequote/services"
	"firequote/storage"
)

var testNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

type handlerFixture struct {
	session *quote.Session
	store   *storage.Memory
	clock   *clock.Manual
}

// newHandlerFixture starts a session over the default catalog and an
// in-memory store.
func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		store: storage.NewMemory(),
		clock: clock.NewManual(testNow),
	}
	f.session = quote.NewSession(quote.Dependencies{
		Catalog:     catalog.Default(),
		Store:       f.store,
		Exporter:    services.DocumentExporter{},
		Clock:       f.clock,
		Logger:      zaptest.NewLogger(t),
		QuoteNumber: func(time.Time) string { return "QT-20250314-007" },
	}, quote.DefaultOptions())
	f.session.Start()
	t.Cleanup(f.session.Close)
	return f
}

// do runs handler h against a request with an optional JSON body and path
// values given as name/value pairs.
func do(t *testing.T, h func(*core.RequestEvent) error, method, target string, body any, path ...string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(path); i += 2 {
		req.SetPathValue(path[i], path[i+1])
	}
	rec := httptest.NewRecorder()
	if err := h(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return v
}

func client(name, email string) models.ClientInfo {
	c := models.NewClientInfo()
	c.Name = name
	c.Email = email
	return c
}
