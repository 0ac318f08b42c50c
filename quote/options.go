// Package quote is the quoting engine: the working line items and client,
// favorites, the saved-client directory, draft autosave, the bundle library
// and the session that assembles and exports finished quotes.
package quote

import "time"

// Options tune the engine. Zero fields take the defaults.
type Options struct {
	// AutosaveDelay is the quiet period after the last change before the
	// draft is written.
	AutosaveDelay time.Duration
	// SavedDisplay is how long the status stays "saved" before reverting.
	SavedDisplay time.Duration
	// DraftMaxAge bounds how old a draft may be and still be offered.
	DraftMaxAge     time.Duration
	MaxClients      int
	SuggestionLimit int
}

// DefaultOptions returns the stock engine settings.
func DefaultOptions() Options {
	return Options{
		AutosaveDelay:   2 * time.Second,
		SavedDisplay:    2 * time.Second,
		DraftMaxAge:     24 * time.Hour,
		MaxClients:      100,
		SuggestionLimit: 5,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.AutosaveDelay <= 0 {
		o.AutosaveDelay = d.AutosaveDelay
	}
	if o.SavedDisplay <= 0 {
		o.SavedDisplay = d.SavedDisplay
	}
	if o.DraftMaxAge <= 0 {
		o.DraftMaxAge = d.DraftMaxAge
	}
	if o.MaxClients <= 0 {
		o.MaxClients = d.MaxClients
	}
	if o.SuggestionLimit <= 0 {
		o.SuggestionLimit = d.SuggestionLimit
	}
	return o
}
