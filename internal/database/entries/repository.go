// Package entries provides database operations for the key-value entry table.
//
// # Usage
//
//	repo := entries.NewRepository(db)
//	entry, err := repo.Get("bookhaven-books")
package entries

import (
	"gorm.io/gorm"

	"github.com/bookhaven/bookhaven/internal/entities"
)

// Repository handles all entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new entries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves an entry by key. Returns gorm.ErrRecordNotFound when the key
// has never been written.
func (r *Repository) Get(key string) (*entities.Entry, error) {
	var entry entities.Entry
	err := r.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Set creates or updates an entry.
func (r *Repository) Set(key, value string) error {
	var entry entities.Entry
	result := r.db.Where("key = ?", key).First(&entry)

	if result.Error == gorm.ErrRecordNotFound {
		entry = entities.Entry{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&entry).Error
	} else if result.Error != nil {
		return result.Error
	}

	entry.Value = value
	return r.db.Save(&entry).Error
}

// Delete removes an entry by key.
func (r *Repository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Entry{}).Error
}
