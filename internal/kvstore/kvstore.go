// Package kvstore exposes the persistence contract the catalog store writes
// through: structured values stored as JSON under fixed string keys.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookhaven/bookhaven/internal/database"
	"github.com/bookhaven/bookhaven/internal/database/entries"
)

// Store is a get/set-with-default key-value store for structured data.
// Load reports whether the key existed; a missing key is not an error.
type Store interface {
	Load(key string, out any) (bool, error)
	Save(key string, value any) error
}

// DatabaseStore persists values as JSON rows in the entry table.
type DatabaseStore struct {
	repo *entries.Repository
}

var _ Store = (*DatabaseStore)(nil)

// New creates a store backed by the application database.
func New(db *database.Database) *DatabaseStore {
	return &DatabaseStore{repo: entries.NewRepository(db.DB)}
}

func (s *DatabaseStore) Load(key string, out any) (bool, error) {
	entry, err := s.repo.Get(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (s *DatabaseStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.repo.Set(key, string(data)); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
