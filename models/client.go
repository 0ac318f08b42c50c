package models

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AustralianStates lists the state codes accepted on a client address.
var AustralianStates = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}

var (
	postcodePattern = regexp.MustCompile(`^\d{4}$`)
	abnPattern      = regexp.MustCompile(`^\d{2} ?\d{3} ?\d{3} ?\d{3}$`)
)

// ClientInfo is the client block of a quote. ABN is optional; an empty
// string means the client has none and it is left off exported documents.
type ClientInfo struct {
	Name          string `json:"name"`
	ABN           string `json:"abn,omitempty"`
	Address       string `json:"address"`
	Suburb        string `json:"suburb"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

// NewClientInfo returns an empty client form with the default state.
func NewClientInfo() ClientInfo {
	return ClientInfo{State: "NSW"}
}

// IsComplete reports whether the client has the name and email needed to
// move past the client step.
func (c ClientInfo) IsComplete() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Email) != ""
}

// HasName reports whether a non-blank name was entered.
func (c ClientInfo) HasName() bool {
	return strings.TrimSpace(c.Name) != ""
}

// Validate returns per-field errors for the client form.
func (c ClientInfo) Validate() error {
	states := make([]any, len(AustralianStates))
	for i, s := range AustralianStates {
		states[i] = s
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Email, validation.Required, is.EmailFormat),
		validation.Field(&c.ABN, validation.Match(abnPattern).Error("must be 11 digits")),
		validation.Field(&c.State, validation.In(states...)),
		validation.Field(&c.Postcode, validation.Match(postcodePattern).Error("must be 4 digits")),
	)
}

// SavedClient is a directory entry: the client details plus usage tracking.
type SavedClient struct {
	ClientInfo
	ID       string    `json:"id"`
	LastUsed time.Time `json:"lastUsed"`
	UseCount int       `json:"useCount"`
}

// Info strips the tracking fields.
func (s SavedClient) Info() ClientInfo {
	return s.ClientInfo
}
