package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestClientInfo_IsComplete(t *testing.T) {
	tests := []struct {
		name   string
		client ClientInfo
		want   bool
	}{
		{"name and email", ClientInfo{Name: "ABC Fire", Email: "a@b.com"}, true},
		{"missing email", ClientInfo{Name: "ABC Fire"}, false},
		{"missing name", ClientInfo{Email: "a@b.com"}, false},
		{"blank name", ClientInfo{Name: "   ", Email: "a@b.com"}, false},
		{"empty", ClientInfo{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.client.IsComplete(); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientInfo_Validate(t *testing.T) {
	valid := ClientInfo{
		Name:     "Test Company Ltd",
		ABN:      "12 345 678 901",
		State:    "NSW",
		Postcode: "2000",
		Email:    "john@test.com",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid client = %v", err)
	}

	noABN := valid
	noABN.ABN = ""
	if err := noABN.Validate(); err != nil {
		t.Errorf("ABN should be optional, got %v", err)
	}

	bad := ClientInfo{Name: "", Email: "not-an-email", Postcode: "20", State: "XX"}
	err := bad.Validate()
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %T (%v)", err, err)
	}
	for _, field := range []string{"name", "email", "postcode", "state"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error on %q, got %v", field, errs)
		}
	}
}

func TestFormulas_Validate(t *testing.T) {
	tests := []struct {
		name    string
		f       Formulas
		wantErr bool
	}{
		{"defaults", DefaultFormulas(), false},
		{"zero gst", Formulas{MaterialMarkup: 1.2}, false},
		{"zero markup", Formulas{GSTRate: 0.1}, true},
		{"negative markup", Formulas{MaterialMarkup: -1, GSTRate: 0.1}, true},
		{"gst above one", Formulas{MaterialMarkup: 1.5, GSTRate: 1.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.f.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDraft_Restorable(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	withName := ClientInfo{Name: "Test Company"}

	tests := []struct {
		name  string
		draft Draft
		want  bool
	}{
		{"one hour old with name", Draft{ClientInfo: withName, LastSaved: now.Add(-time.Hour)}, true},
		{"25 hours old", Draft{ClientInfo: withName, LastSaved: now.Add(-25 * time.Hour)}, false},
		{"exactly 24 hours old", Draft{ClientInfo: withName, LastSaved: now.Add(-24 * time.Hour)}, false},
		{"fresh but empty", Draft{LastSaved: now.Add(-time.Minute)}, false},
		{"fresh with items only", Draft{
			SelectedItems: []LineItem{{Equipment: Equipment{ID: 1}, Quantity: 1}},
			LastSaved:     now.Add(-time.Minute),
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.draft.Restorable(now, 24*time.Hour); got != tt.want {
				t.Errorf("Restorable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDraft_JSONShape(t *testing.T) {
	saved := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	d := Draft{
		ID:         DraftID,
		ClientInfo: ClientInfo{Name: "Test Company", Email: "john@test.com"},
		SelectedItems: []LineItem{
			{Equipment: Equipment{ID: 1, Name: "Fire Indicator Panel", BasePrice: 2500}, Quantity: 2, UnitPrice: 3750, TotalPrice: 7500},
		},
		LastSaved: saved,
		AutoSaved: true,
	}
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("Unmarshal generic: %v", err)
	}
	for _, key := range []string{"id", "clientInfo", "selectedItems", "lastSaved", "autoSaved"} {
		if _, ok := generic[key]; !ok {
			t.Errorf("draft JSON missing %q: %s", key, raw)
		}
	}

	var back Draft
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.ClientInfo != d.ClientInfo {
		t.Errorf("client = %+v, want %+v", back.ClientInfo, d.ClientInfo)
	}
	if len(back.SelectedItems) != 1 || back.SelectedItems[0] != d.SelectedItems[0] {
		t.Errorf("items = %+v, want %+v", back.SelectedItems, d.SelectedItems)
	}
	if !back.LastSaved.Equal(saved) {
		t.Errorf("lastSaved = %v, want %v", back.LastSaved, saved)
	}
}

func TestSavedClient_FlatJSON(t *testing.T) {
	raw := `{"name":"Test Company","email":"john@test.com","id":"client-1","lastUsed":"2026-03-01T10:00:00Z","useCount":3}`
	var sc SavedClient
	if err := json.Unmarshal([]byte(raw), &sc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if sc.Name != "Test Company" || sc.ID != "client-1" || sc.UseCount != 3 {
		t.Errorf("decoded = %+v", sc)
	}
	if sc.Info().Email != "john@test.com" {
		t.Errorf("Info().Email = %q", sc.Info().Email)
	}
}

func TestCompanySettings_ValidityDays(t *testing.T) {
	var nilSettings *CompanySettings
	if got := nilSettings.ValidityDays(); got != DefaultValidityDays {
		t.Errorf("nil settings = %d, want %d", got, DefaultValidityDays)
	}
	if got := (&CompanySettings{ValidityPeriod: 14}).ValidityDays(); got != 14 {
		t.Errorf("configured = %d, want 14", got)
	}
	if got := (&CompanySettings{ValidityPeriod: -3}).ValidityDays(); got != DefaultValidityDays {
		t.Errorf("negative = %d, want default", got)
	}
}
