package quote

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"firequote/catalog"
	"firequote/clock"
	"firequote/models"
	"firequote/services"
	"firequote/storage"
)

// ErrEmptyQuote is returned by Export when the quote has no line items.
var ErrEmptyQuote = errors.New("quote has no line items")

// Exporter renders a finished quote as a document.
type Exporter interface {
	Export(format services.Format, q models.Quote) (services.Document, error)
}

// Dependencies are the collaborators a Session is built from. Clock, Logger
// and QuoteNumber are optional.
type Dependencies struct {
	Catalog     catalog.Catalog
	Store       storage.Store
	Exporter    Exporter
	Clock       clock.Clock
	Logger      *zap.Logger
	QuoteNumber func(time.Time) string
}

// Session owns the quote being built: its line items and client details,
// plus the stores that outlive a single quote.
type Session struct {
	catalog     catalog.Catalog
	store       storage.Store
	exporter    Exporter
	clock       clock.Clock
	logger      *zap.Logger
	opts        Options
	quoteNumber func(time.Time) string

	favorites *Favorites
	clients   *ClientDirectory
	bundles   *Bundles
	autosave  *Autosave

	mu     sync.Mutex
	items  *LineItems
	client models.ClientInfo
	draft  *models.Draft // offered for restore, nil when none
}

// NewSession wires a session. Call Start to hydrate it from storage.
func NewSession(deps Dependencies, opts Options) *Session {
	opts = opts.withDefaults()
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := deps.Clock
	if clk == nil {
		clk = clock.Real()
	}
	number := deps.QuoteNumber
	if number == nil {
		number = services.GenerateQuoteNumber
	}
	exporter := deps.Exporter
	if exporter == nil {
		exporter = services.DocumentExporter{}
	}

	return &Session{
		catalog:     deps.Catalog,
		store:       deps.Store,
		exporter:    exporter,
		clock:       clk,
		logger:      logger,
		opts:        opts,
		quoteNumber: number,
		favorites:   NewFavorites(deps.Store, logger.Named("favorites")),
		clients:     NewClientDirectory(deps.Store, clk, logger.Named("clients"), opts.MaxClients, opts.SuggestionLimit),
		bundles:     NewBundles(deps.Catalog, deps.Store, logger.Named("bundles")),
		autosave:    NewAutosave(deps.Store, clk, logger.Named("autosave"), opts.AutosaveDelay, opts.SavedDisplay),
		items:       NewLineItems(),
		client:      models.NewClientInfo(),
	}
}

// Start loads favorites, saved clients, bundle statistics and any draft
// worth offering for restore.
func (s *Session) Start() {
	s.favorites.Load()
	s.clients.Load()
	s.bundles.Load()

	d, ok := s.autosave.LoadDraft(s.opts.DraftMaxAge)
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.draft = &d
		s.logger.Info("draft available for restore",
			zap.Time("last_saved", d.LastSaved),
			zap.Int("items", len(d.SelectedItems)),
		)
	} else {
		s.draft = nil
	}
}

// Close cancels any pending autosave.
func (s *Session) Close() {
	s.autosave.Close()
}

func (s *Session) Catalog() catalog.Catalog               { return s.catalog }
func (s *Session) Favorites() *Favorites                  { return s.favorites }
func (s *Session) Clients() *ClientDirectory              { return s.clients }
func (s *Session) Bundles() *Bundles                      { return s.bundles }
func (s *Session) SaveStatus() SaveStatus                 { return s.autosave.Status() }
func (s *Session) Formulas() models.Formulas              { return s.catalog.Formulas() }
func (s *Session) Lookup(id int) (models.Equipment, bool) { return s.catalog.Lookup(id) }

// Now is the session clock's current time.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// changedLocked hands the current state to the autosaver.
func (s *Session) changedLocked() {
	s.autosave.NotifyChanged(s.client, s.items.Items())
}

// AddItem adds one unit of the catalog equipment with id.
func (s *Session) AddItem(equipmentID int) (models.LineItem, bool) {
	e, ok := s.catalog.Lookup(equipmentID)
	if !ok {
		return models.LineItem{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items.Add(e, s.catalog.Formulas())
	s.changedLocked()
	return item, true
}

// SetQuantity changes a line's quantity; zero or less removes it.
func (s *Session) SetQuantity(equipmentID, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.items.SetQuantity(equipmentID, qty) {
		return false
	}
	s.changedLocked()
	return true
}

// ApplyBundle merges the bundle with id into the quote and counts a use.
// Lines whose equipment is no longer in the catalog are skipped.
func (s *Session) ApplyBundle(id string, overrides map[int]int) (BundleResult, bool) {
	b, ok := s.bundles.Find(id)
	if !ok {
		return BundleResult{}, false
	}

	s.mu.Lock()
	res := s.items.ApplyBundle(b, overrides, s.catalog.Lookup, s.catalog.Formulas())
	s.changedLocked()
	s.mu.Unlock()

	for _, eqID := range res.Skipped {
		s.logger.Warn("bundle references unknown equipment",
			zap.String("bundle_id", id),
			zap.Int("equipment_id", eqID),
		)
	}
	s.bundles.RecordUse(id)
	return res, true
}

// PreviewBundle prices the bundle with id without changing the quote.
func (s *Session) PreviewBundle(id string, overrides map[int]int) (BundlePreview, bool) {
	b, ok := s.bundles.Find(id)
	if !ok {
		return BundlePreview{}, false
	}
	return Preview(b, overrides, s.catalog.Lookup, s.catalog.Formulas()), true
}

// SetClient replaces the client details being entered.
func (s *Session) SetClient(info models.ClientInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = info
	s.changedLocked()
}

// SelectClient fills the client details from a directory entry.
func (s *Session) SelectClient(id string) (models.ClientInfo, bool) {
	info, ok := s.clients.Select(id)
	if !ok {
		return models.ClientInfo{}, false
	}
	s.SetClient(info)
	return info, true
}

func (s *Session) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Items()
}

func (s *Session) Client() models.ClientInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// Totals prices the current lines.
func (s *Session) Totals() services.QuoteTotals {
	return services.CalcQuoteTotals(s.Items(), s.catalog.Formulas())
}

// DraftPrompt describes a draft waiting to be restored or discarded.
type DraftPrompt struct {
	LastSaved  time.Time `json:"lastSaved"`
	ClientName string    `json:"clientName"`
	ItemCount  int       `json:"itemCount"`
}

// State is a read-only view of the session for presentation.
type State struct {
	Client      models.ClientInfo    `json:"client"`
	Items       []models.LineItem    `json:"items"`
	Totals      services.QuoteTotals `json:"totals"`
	SaveStatus  SaveStatus           `json:"saveStatus"`
	LastSaved   *time.Time           `json:"lastSaved,omitempty"`
	Draft       *DraftPrompt         `json:"draft,omitempty"`
	CanExport   bool                 `json:"canExport"`
	ClientReady bool                 `json:"clientReady"`
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	items := s.items.Items()
	st := State{
		Client:      s.client,
		Items:       items,
		Totals:      services.CalcQuoteTotals(items, s.catalog.Formulas()),
		CanExport:   len(items) > 0,
		ClientReady: s.client.IsComplete(),
	}
	if s.draft != nil {
		st.Draft = &DraftPrompt{
			LastSaved:  s.draft.LastSaved,
			ClientName: s.draft.ClientInfo.Name,
			ItemCount:  len(s.draft.SelectedItems),
		}
	}
	s.mu.Unlock()

	st.SaveStatus = s.autosave.Status()
	if t := s.autosave.LastSaved(); !t.IsZero() {
		st.LastSaved = &t
	}
	return st
}

// RestoreDraft replaces the working quote with the offered draft. It
// reports false when no draft is on offer.
func (s *Session) RestoreDraft() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return false
	}
	s.client = s.draft.ClientInfo
	s.items.Replace(s.draft.SelectedItems)
	s.draft = nil
	s.autosave.Cancel()
	return true
}

// DiscardDraft deletes the offered draft without restoring it.
func (s *Session) DiscardDraft() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return false
	}
	s.draft = nil
	s.autosave.Remove()
	return true
}

// NewQuote empties the working quote and deletes the draft.
func (s *Session) NewQuote() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.items.Reset()
	s.client = models.NewClientInfo()
	s.draft = nil
	s.autosave.Clear()
}

// Export records the client in the directory, prices the quote and renders
// it. On success the draft is deleted and a new quote begins; a failed
// render leaves everything in place.
func (s *Session) Export(format services.Format) (services.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items.Len() == 0 {
		return services.Document{}, ErrEmptyQuote
	}

	s.clients.Upsert(s.client)

	items := s.items.Items()
	f := s.catalog.Formulas()
	totals := services.CalcQuoteTotals(items, f)
	company := s.companySettings()
	now := s.clock.Now()

	q := models.Quote{
		Number:     s.quoteNumber(now),
		ClientInfo: s.client,
		Items:      items,
		Subtotal:   totals.Subtotal,
		GST:        totals.GST,
		Total:      totals.Total,
		GSTRate:    f.GSTRate,
		CreatedAt:  now,
		ValidUntil: now.AddDate(0, 0, company.ValidityDays()),
		Company:    company,
	}

	doc, err := s.exporter.Export(format, q)
	if err != nil {
		return services.Document{}, fmt.Errorf("export quote %s: %w", q.Number, err)
	}

	s.logger.Info("quote exported",
		zap.String("number", q.Number),
		zap.String("format", string(format)),
		zap.String("client", q.ClientInfo.Name),
		zap.Int("items", len(items)),
		zap.Float64("total", q.Total),
	)
	s.resetLocked()
	return doc, nil
}

func (s *Session) companySettings() *models.CompanySettings {
	var c models.CompanySettings
	found, err := storage.LoadJSON(s.store, storage.KeyCompanySettings, &c)
	if err != nil {
		s.logger.Error("failed to load company settings", zap.String("key", storage.KeyCompanySettings), zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	return &c
}
