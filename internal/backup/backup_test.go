package backup

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/catalog"
	"github.com/bookhaven/bookhaven/internal/config"
	"github.com/bookhaven/bookhaven/internal/kvstore"
)

func newBackupCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.New(catalog.Options{KV: kvstore.NewMemory()})
	require.NoError(t, err)
	return store
}

func TestWriteSnapshot(t *testing.T) {
	t.Run("writes timestamped file that round-trips", func(t *testing.T) {
		store := newBackupCatalog(t)
		dir := t.TempDir()

		when := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
		path, err := WriteSnapshot(store, dir, when)
		require.NoError(t, err)
		assert.Contains(t, path, "catalog-20240301-123045.json")

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var snapshot catalog.Snapshot
		require.NoError(t, json.Unmarshal(data, &snapshot))
		assert.Len(t, snapshot.Books, 8)
		assert.Empty(t, snapshot.FavoriteBookIDs)
	})

	t.Run("includes favourites", func(t *testing.T) {
		store := newBackupCatalog(t)
		store.ToggleFavorite("2")

		path, err := WriteSnapshot(store, t.TempDir(), time.Now())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var snapshot catalog.Snapshot
		require.NoError(t, json.Unmarshal(data, &snapshot))
		assert.Equal(t, []string{"2"}, snapshot.FavoriteBookIDs)
	})

	t.Run("creates the backup directory", func(t *testing.T) {
		store := newBackupCatalog(t)
		dir := t.TempDir() + "/nested/backups"

		_, err := WriteSnapshot(store, dir, time.Now())
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 * * * *"))
	assert.NoError(t, ValidateSchedule("*/15 * * * *"))
	assert.Error(t, ValidateSchedule("not a schedule"))
	assert.Error(t, ValidateSchedule("0 * * *"))
}

func TestScheduler_Start(t *testing.T) {
	t.Run("disabled config is a no-op", func(t *testing.T) {
		scheduler := NewScheduler(newBackupCatalog(t), config.Backup{Enabled: false})

		require.NoError(t, scheduler.Start(context.Background()))
		assert.False(t, scheduler.IsRunning())
	})

	t.Run("rejects invalid schedule", func(t *testing.T) {
		scheduler := NewScheduler(newBackupCatalog(t), config.Backup{
			Enabled:  true,
			Schedule: "bogus",
			Dir:      t.TempDir(),
		})

		assert.Error(t, scheduler.Start(context.Background()))
	})

	t.Run("starts and stops cleanly", func(t *testing.T) {
		scheduler := NewScheduler(newBackupCatalog(t), config.Backup{
			Enabled:  true,
			Schedule: "0 * * * *",
			Dir:      t.TempDir(),
		})

		require.NoError(t, scheduler.Start(context.Background()))
		assert.True(t, scheduler.IsRunning())
		assert.NotNil(t, scheduler.NextRunTime())

		scheduler.Stop()
		assert.False(t, scheduler.IsRunning())
	})
}

func TestScheduler_RunNow(t *testing.T) {
	dir := t.TempDir()
	scheduler := NewScheduler(newBackupCatalog(t), config.Backup{
		Enabled:  true,
		Schedule: "0 * * * *",
		Dir:      dir,
	})

	path, err := scheduler.RunNow()
	require.NoError(t, err)
	assert.FileExists(t, path)
}
