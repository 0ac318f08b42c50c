package quote

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"firequote/clock"
	"firequote/models"
	"firequote/storage"
)

// SaveStatus is the autosave indicator state.
type SaveStatus string

const (
	StatusIdle   SaveStatus = "idle"
	StatusDirty  SaveStatus = "dirty"
	StatusSaving SaveStatus = "saving"
	StatusSaved  SaveStatus = "saved"
)

// Autosave writes the working quote as a draft once changes settle. Every
// NotifyChanged restarts the delay, so only the final state after a quiet
// period is written.
type Autosave struct {
	store        storage.Store
	clock        clock.Clock
	logger       *zap.Logger
	delay        time.Duration
	savedDisplay time.Duration

	mu        sync.Mutex
	status    SaveStatus
	client    models.ClientInfo
	items     []models.LineItem
	timer     clock.Timer
	revert    clock.Timer
	gen       uint64 // bumped on every schedule or cancel; stale timers compare against it
	lastSaved time.Time
	closed    bool
}

// NewAutosave returns an idle autosaver.
func NewAutosave(store storage.Store, clk clock.Clock, logger *zap.Logger, delay, savedDisplay time.Duration) *Autosave {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &Autosave{
		store:        store,
		clock:        clk,
		logger:       logger,
		delay:        delay,
		savedDisplay: savedDisplay,
		status:       StatusIdle,
	}
}

// NotifyChanged records the latest working state and restarts the delay.
func (a *Autosave) NotifyChanged(client models.ClientInfo, items []models.LineItem) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	a.client = client
	a.items = append([]models.LineItem{}, items...)
	a.status = StatusDirty
	a.stopTimersLocked()
	a.gen++
	gen := a.gen
	a.timer = a.clock.AfterFunc(a.delay, func() { a.flush(gen) })
}

func (a *Autosave) flush(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || gen != a.gen {
		return
	}
	a.timer = nil

	draft := models.Draft{
		ID:            models.DraftID,
		ClientInfo:    a.client,
		SelectedItems: a.items,
		AutoSaved:     true,
	}
	if !draft.HasContent() {
		a.status = StatusIdle
		return
	}

	a.status = StatusSaving
	draft.LastSaved = a.clock.Now()
	if err := storage.SaveJSON(a.store, storage.KeyDraft, draft); err != nil {
		a.logger.Error("failed to save draft",
			zap.String("key", storage.KeyDraft),
			zap.Int("items", len(draft.SelectedItems)),
			zap.Error(err),
		)
		a.status = StatusIdle
		return
	}

	a.status = StatusSaved
	a.lastSaved = draft.LastSaved
	a.revert = a.clock.AfterFunc(a.savedDisplay, func() { a.settle(gen) })
}

func (a *Autosave) settle(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen == a.gen && a.status == StatusSaved {
		a.status = StatusIdle
	}
	a.revert = nil
}

func (a *Autosave) stopTimersLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.revert != nil {
		a.revert.Stop()
		a.revert = nil
	}
}

// Status returns the current indicator state.
func (a *Autosave) Status() SaveStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// LastSaved returns when the draft was last written, or the zero time.
func (a *Autosave) LastSaved() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSaved
}

// LoadDraft returns the persisted draft if it is fresh enough and has
// content worth restoring.
func (a *Autosave) LoadDraft(maxAge time.Duration) (models.Draft, bool) {
	var d models.Draft
	found, err := storage.LoadJSON(a.store, storage.KeyDraft, &d)
	if err != nil {
		a.logger.Error("failed to load draft", zap.String("key", storage.KeyDraft), zap.Error(err))
		return models.Draft{}, false
	}
	if !found || !d.Restorable(a.clock.Now(), maxAge) {
		return models.Draft{}, false
	}
	return d, true
}

// Cancel drops any pending write and returns to idle.
func (a *Autosave) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
}

func (a *Autosave) cancelLocked() {
	a.stopTimersLocked()
	a.gen++
	a.status = StatusIdle
}

// Remove deletes the persisted draft without touching a pending write.
func (a *Autosave) Remove() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.removeLocked()
}

func (a *Autosave) removeLocked() {
	if err := a.store.Remove(storage.KeyDraft); err != nil {
		a.logger.Error("failed to clear draft", zap.String("key", storage.KeyDraft), zap.Error(err))
	}
}

// Clear cancels any pending write and deletes the persisted draft.
func (a *Autosave) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
	a.removeLocked()
}

// Close cancels pending work. Later notifications are ignored.
func (a *Autosave) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
	a.closed = true
}
