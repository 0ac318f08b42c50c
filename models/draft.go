package models

import "time"

// DraftID is the fixed identifier of the single autosaved draft.
const DraftID = "current-draft"

// Draft is the autosaved snapshot of an unexported quote.
type Draft struct {
	ID            string     `json:"id"`
	ClientInfo    ClientInfo `json:"clientInfo"`
	SelectedItems []LineItem `json:"selectedItems"`
	LastSaved     time.Time  `json:"lastSaved"`
	AutoSaved     bool       `json:"autoSaved"`
}

// IsFresh reports whether the draft was saved less than maxAge before now.
func (d Draft) IsFresh(now time.Time, maxAge time.Duration) bool {
	return now.Sub(d.LastSaved) < maxAge
}

// HasContent reports whether the draft carries a client name or any items.
func (d Draft) HasContent() bool {
	return d.ClientInfo.HasName() || len(d.SelectedItems) > 0
}

// Restorable combines freshness and content; only such drafts are offered
// for restore.
func (d Draft) Restorable(now time.Time, maxAge time.Duration) bool {
	return d.IsFresh(now, maxAge) && d.HasContent()
}
