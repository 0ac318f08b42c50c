package quote

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"firequote/models"
	"firequote/storage"
)

// Favorites is the persisted set of favourite equipment ids.
type Favorites struct {
	store  storage.Store
	logger *zap.Logger

	mu  sync.Mutex
	ids []int
	set map[int]struct{}
}

// NewFavorites returns an empty set backed by store.
func NewFavorites(store storage.Store, logger *zap.Logger) *Favorites {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Favorites{store: store, logger: logger, set: make(map[int]struct{})}
}

// Load replaces the set with the persisted ids. Unreadable data leaves the
// set empty.
func (f *Favorites) Load() {
	var ids []int
	if _, err := storage.LoadJSON(f.store, storage.KeyFavorites, &ids); err != nil {
		f.logger.Error("failed to load favorites", zap.String("key", storage.KeyFavorites), zap.Error(err))
		ids = nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = nil
	f.set = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := f.set[id]; dup {
			continue
		}
		f.set[id] = struct{}{}
		f.ids = append(f.ids, id)
	}
}

// Toggle adds or removes id, persists the set and reports whether id is now
// a favourite.
func (f *Favorites) Toggle(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, on := f.set[id]
	if on {
		delete(f.set, id)
		for i, v := range f.ids {
			if v == id {
				f.ids = append(f.ids[:i], f.ids[i+1:]...)
				break
			}
		}
	} else {
		f.set[id] = struct{}{}
		f.ids = append(f.ids, id)
	}

	if err := storage.SaveJSON(f.store, storage.KeyFavorites, f.idsLocked()); err != nil {
		f.logger.Error("failed to save favorites", zap.Int("equipment_id", id), zap.Error(err))
	}
	return !on
}

func (f *Favorites) idsLocked() []int {
	return append([]int{}, f.ids...)
}

func (f *Favorites) IsFavorite(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.set[id]
	return ok
}

func (f *Favorites) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ids)
}

// IDs returns the favourite ids in the order they were added.
func (f *Favorites) IDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.idsLocked()
}

// Sort returns equipment with favourites first, otherwise keeping the
// input order.
func (f *Favorites) Sort(equipment []models.Equipment) []models.Equipment {
	out := append([]models.Equipment{}, equipment...)
	f.mu.Lock()
	defer f.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		_, fi := f.set[out[i].ID]
		_, fj := f.set[out[j].ID]
		return fi && !fj
	})
	return out
}

// Filter keeps only favourite equipment.
func (f *Favorites) Filter(equipment []models.Equipment) []models.Equipment {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Equipment, 0, len(f.set))
	for _, e := range equipment {
		if _, ok := f.set[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}
