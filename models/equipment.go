// Package models holds the quote data shapes shared by the catalog, the
// pricing services and the quoting engine. JSON tags match the persisted
// storage layout.
package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Equipment is a priced catalog entry. Identity is ID.
type Equipment struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	BasePrice   float64 `json:"basePrice"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

// Category groups equipment for browsing.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Formulas are the pricing coefficients applied to catalog base prices.
type Formulas struct {
	GSTRate        float64 `json:"gstRate"`
	MaterialMarkup float64 `json:"materialMarkup"`
	LaborRate      float64 `json:"laborRate"`
	Overheads      float64 `json:"overheads"`
}

// DefaultFormulas are the Australian defaults: 10% GST, 1.5x material markup.
func DefaultFormulas() Formulas {
	return Formulas{
		GSTRate:        0.10,
		MaterialMarkup: 1.5,
		LaborRate:      150,
		Overheads:      0.15,
	}
}

// Validate checks that the markup is positive and the GST rate is a fraction.
func (f Formulas) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.MaterialMarkup, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&f.GSTRate, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&f.LaborRate, validation.Min(0.0)),
		validation.Field(&f.Overheads, validation.Min(0.0)),
	)
}
