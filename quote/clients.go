package quote

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"firequote/clock"
	"firequote/models"
	"firequote/storage"
)

// minSuggestQuery is the shortest query that produces suggestions.
const minSuggestQuery = 2

// ClientDirectory is the persisted list of previously quoted clients, most
// recently used first.
type ClientDirectory struct {
	store  storage.Store
	clock  clock.Clock
	logger *zap.Logger
	max    int
	limit  int
	newID  func() string

	mu      sync.Mutex
	clients []models.SavedClient
}

// NewClientDirectory returns an empty directory. maxClients caps the
// retained entries and limit caps Suggest results.
func NewClientDirectory(store storage.Store, clk clock.Clock, logger *zap.Logger, maxClients, limit int) *ClientDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.Real()
	}
	d := DefaultOptions()
	if maxClients <= 0 {
		maxClients = d.MaxClients
	}
	if limit <= 0 {
		limit = d.SuggestionLimit
	}
	return &ClientDirectory{
		store:  store,
		clock:  clk,
		logger: logger,
		max:    maxClients,
		limit:  limit,
		newID:  uuid.NewString,
	}
}

// Load replaces the directory with the persisted list. Unreadable data
// leaves the directory empty.
func (d *ClientDirectory) Load() {
	var clients []models.SavedClient
	if _, err := storage.LoadJSON(d.store, storage.KeyClients, &clients); err != nil {
		d.logger.Error("failed to load saved clients", zap.String("key", storage.KeyClients), zap.Error(err))
		clients = nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.clients = clients
}

// Suggest returns clients whose name contains query, ignoring case, with
// the most used first. Queries shorter than two characters match nothing.
func (d *ClientDirectory) Suggest(query string) []models.SavedClient {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minSuggestQuery {
		return []models.SavedClient{}
	}

	d.mu.Lock()
	var matches []models.SavedClient
	for _, c := range d.clients {
		if strings.Contains(strings.ToLower(c.Name), q) {
			matches = append(matches, c)
		}
	}
	d.mu.Unlock()

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].UseCount > matches[j].UseCount
	})
	if len(matches) > d.limit {
		matches = matches[:d.limit]
	}
	if matches == nil {
		return []models.SavedClient{}
	}
	return matches
}

// Upsert records a use of info. A client with the same name, ignoring case,
// keeps its id and gets its details refreshed and count incremented; any
// other name becomes a new entry. The touched entry moves to the front and
// the list is trimmed to the cap before it is persisted. Blank names are
// ignored.
func (d *ClientDirectory) Upsert(info models.ClientInfo) (models.SavedClient, bool) {
	name := strings.TrimSpace(info.Name)
	if name == "" {
		return models.SavedClient{}, false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	entry := models.SavedClient{ClientInfo: info, ID: d.newID(), LastUsed: now, UseCount: 1}
	rest := make([]models.SavedClient, 0, len(d.clients)+1)
	for _, c := range d.clients {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			entry.ID = c.ID
			entry.UseCount = c.UseCount + 1
			continue
		}
		rest = append(rest, c)
	}

	d.clients = append([]models.SavedClient{entry}, rest...)
	if len(d.clients) > d.max {
		d.clients = d.clients[:d.max]
	}

	if err := storage.SaveJSON(d.store, storage.KeyClients, d.clients); err != nil {
		d.logger.Error("failed to save clients", zap.String("client", name), zap.Error(err))
	}
	return entry, true
}

// Select returns the details of the client with id. It does not count as a
// use.
func (d *ClientDirectory) Select(id string) (models.ClientInfo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.clients {
		if c.ID == id {
			return c.Info(), true
		}
	}
	return models.ClientInfo{}, false
}

// Recent returns the directory in stored order, most recently used first.
func (d *ClientDirectory) Recent() []models.SavedClient {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.SavedClient{}, d.clients...)
}

func (d *ClientDirectory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.clients)
}
