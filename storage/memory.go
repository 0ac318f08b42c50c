package storage

import "sync"

// Memory is an in-process Store. A positive quota caps the total size of
// all keys and values in bytes, mirroring browser storage limits.
type Memory struct {
	mu     sync.Mutex
	data   map[string]string
	quota  int
	writes map[string]int
}

// NewMemory returns an empty, unbounded store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string), writes: make(map[string]int)}
}

// SetQuota bounds the store. Zero removes the bound.
func (m *Memory) SetQuota(bytes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quota = bytes
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.quota > 0 {
		size := len(key) + len(value)
		for k, v := range m.data {
			if k != key {
				size += len(k) + len(v)
			}
		}
		if size > m.quota {
			return ErrQuotaExceeded
		}
	}
	m.data[key] = value
	m.writes[key]++
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Writes returns how many successful Set calls hit key.
func (m *Memory) Writes(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}
