// Package storage is the durable key-value service behind every persisted
// piece of quoting state. Values are JSON strings under fixed keys.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Storage keys. The names are kept stable so existing data stays readable.
const (
	KeyDraft           = "fire-quotes-draft"
	KeyClients         = "fire-quotes-clients"
	KeyFavorites       = "fire-quotes-favorites"
	KeyCustomBundles   = "customBundles"
	KeyBundleUsage     = "bundleUsageStats"
	KeyCompanySettings = "company-settings"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrQuotaExceeded is returned by Set when the write does not fit.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Store is a synchronous string key-value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// LoadJSON decodes the value under key into v. It reports false with a nil
// error when the key is absent.
func LoadJSON(s Store, key string, v any) (bool, error) {
	raw, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
