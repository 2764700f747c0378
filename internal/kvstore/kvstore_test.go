package kvstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/database"
	"github.com/bookhaven/bookhaven/internal/entities"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	dbPath := "./test_kvstore_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestDatabaseStore_RoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := New(db)

	books := []entities.Book{
		{
			ID:     "1",
			Title:  "The Great Gatsby",
			Author: "F. Scott Fitzgerald",
			Genre:  "Classic",
			Reviews: []entities.Review{
				{ID: "101", UserName: "Ayesha Khan", Rating: 5, Comment: "Timeless.", Date: "2023-04-15"},
			},
		},
	}

	require.NoError(t, store.Save("bookhaven-books", books))

	var loaded []entities.Book
	found, err := store.Load("bookhaven-books", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, books, loaded)
}

func TestDatabaseStore_MissingKey(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := New(db)

	var ids []string
	found, err := store.Load("bookhaven-favorites", &ids)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, ids)
}

func TestDatabaseStore_Overwrite(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := New(db)

	require.NoError(t, store.Save("bookhaven-favorites", []string{"3"}))
	require.NoError(t, store.Save("bookhaven-favorites", []string{"3", "7"}))

	var ids []string
	found, err := store.Load("bookhaven-favorites", &ids)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"3", "7"}, ids)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	var missing []string
	found, err := store.Load("nope", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save("bookhaven-favorites", []string{"3"}))

	var ids []string
	found, err = store.Load("bookhaven-favorites", &ids)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"3"}, ids)
}
