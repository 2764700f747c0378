package entities

import "time"

// Entry is a single row of the key-value persistence table. Values are
// JSON-encoded blobs owned by whoever wrote the key (the catalog store keeps
// its books and favourites here).
type Entry struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
