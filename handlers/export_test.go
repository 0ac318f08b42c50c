package handlers

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"

	"firequote/storage"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Quote-QT-20250314-007.pdf", "Quote-QT-20250314-007.pdf"},
		{"Quote A/B.pdf", "Quote-A-B.pdf"},
		{`a\b:c"d`, "a-b-cd"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHandleQuoteExport_CSV(t *testing.T) {
	f := newHandlerFixture(t)
	f.session.AddItem(1)
	f.session.AddItem(2)
	f.session.SetClient(client("Acme Fire", "ops@acme.com.au"))

	h := HandleQuoteExport(f.session, zap.NewNop())
	rec := do(t, h, http.MethodGet, "/api/quote/export/csv", nil, "format", "csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	want := `attachment; filename="Quote-QT-20250314-007.csv"`
	if cd := rec.Header().Get("Content-Disposition"); cd != want {
		t.Errorf("Content-Disposition = %q, want %q", cd, want)
	}

	r := csv.NewReader(strings.NewReader(rec.Body.String()))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("body is not CSV: %v", err)
	}
	var total []string
	for _, record := range records {
		if len(record) > 0 && record[0] == "Total" {
			total = record
		}
	}
	// (3750 + 180) * 1.1
	if total == nil || total[len(total)-1] != "4323.00" {
		t.Errorf("total row = %v", total)
	}

	if len(f.session.Items()) != 0 {
		t.Error("session should reset after export")
	}
	if recent := f.session.Clients().Recent(); len(recent) != 1 || recent[0].Name != "Acme Fire" {
		t.Errorf("client directory = %+v", recent)
	}
	if _, err := f.store.Get(storage.KeyDraft); err == nil {
		t.Error("draft should be cleared after export")
	}
}

func TestHandleQuoteExport_Formats(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
		magic       string
	}{
		{"pdf", "application/pdf", "%PDF"},
		{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "PK"},
		{"EXCEL", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "PK"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.session.AddItem(3)

			rec := do(t, HandleQuoteExport(f.session, zap.NewNop()), http.MethodGet, "/api/quote/export/"+tt.format, nil, "format", tt.format)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q", ct)
			}
			if !strings.HasPrefix(rec.Body.String(), tt.magic) {
				t.Errorf("body does not start with %q", tt.magic)
			}
		})
	}
}

func TestHandleQuoteExport_Errors(t *testing.T) {
	f := newHandlerFixture(t)
	h := HandleQuoteExport(f.session, zap.NewNop())

	rec := do(t, h, http.MethodGet, "/api/quote/export/pdf", nil, "format", "pdf")
	if rec.Code != http.StatusConflict {
		t.Errorf("empty quote status = %d, want 409", rec.Code)
	}
	if len(f.session.Clients().Recent()) != 0 {
		t.Error("empty export must not touch the client directory")
	}

	f.session.AddItem(1)
	rec = do(t, h, http.MethodGet, "/api/quote/export/docx", nil, "format", "docx")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad format status = %d, want 400", rec.Code)
	}
	if len(f.session.Items()) != 1 {
		t.Error("rejected export must keep the quote")
	}
}
