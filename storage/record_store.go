package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// EntriesCollection is the PocketBase collection holding one record per key.
const EntriesCollection = "kv_entries"

// RecordStore persists keys as records of the kv_entries collection.
type RecordStore struct {
	app *pocketbase.PocketBase
}

// NewRecordStore returns a Store backed by app. The kv_entries collection
// must exist before the first call (see collections.Setup).
func NewRecordStore(app *pocketbase.PocketBase) *RecordStore {
	return &RecordStore{app: app}
}

func (s *RecordStore) find(key string) (*core.Record, error) {
	record, err := s.app.FindFirstRecordByData(EntriesCollection, "key", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find entry %q: %w", key, err)
	}
	return record, nil
}

func (s *RecordStore) Get(key string) (string, error) {
	record, err := s.find(key)
	if err != nil {
		return "", err
	}
	return record.GetString("value"), nil
}

func (s *RecordStore) Set(key, value string) error {
	record, err := s.find(key)
	if errors.Is(err, ErrNotFound) {
		col, colErr := s.app.FindCollectionByNameOrId(EntriesCollection)
		if colErr != nil {
			return fmt.Errorf("collection not found: %w", colErr)
		}
		record = core.NewRecord(col)
		record.Set("key", key)
	} else if err != nil {
		return err
	}
	record.Set("value", value)
	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("save entry %q: %w", key, err)
	}
	return nil
}

func (s *RecordStore) Remove(key string) error {
	record, err := s.find(key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("delete entry %q: %w", key, err)
	}
	return nil
}
