package entries

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookhaven/bookhaven/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_entries_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Entry{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Set_New(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Set("bookhaven-favorites", `["3"]`)
	require.NoError(t, err)

	entry, err := repo.Get("bookhaven-favorites")
	require.NoError(t, err)
	assert.Equal(t, "bookhaven-favorites", entry.Key)
	assert.Equal(t, `["3"]`, entry.Value)
}

func TestRepository_Set_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Set("bookhaven-favorites", `["3"]`)
	require.NoError(t, err)

	err = repo.Set("bookhaven-favorites", `["3","7"]`)
	require.NoError(t, err)

	entry, err := repo.Get("bookhaven-favorites")
	require.NoError(t, err)
	assert.Equal(t, `["3","7"]`, entry.Value)
}

func TestRepository_Get_Missing(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Get("never-written")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Set("bookhaven-books", `[]`))
	require.NoError(t, repo.Delete("bookhaven-books"))

	_, err := repo.Get("bookhaven-books")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
