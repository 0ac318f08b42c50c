package models

import "time"

// Quote is a finalized quote handed to an exporter. Company is nil when no
// settings have been stored.
type Quote struct {
	Number     string
	ClientInfo ClientInfo
	Items      []LineItem
	Subtotal   float64
	GST        float64
	Total      float64
	GSTRate    float64
	CreatedAt  time.Time
	ValidUntil time.Time
	Company    *CompanySettings
}
