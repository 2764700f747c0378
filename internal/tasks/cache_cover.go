package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/bookhaven/bookhaven/internal/covers"
)

// CacheCoverTask downloads a book's cover image into the local cache.
type CacheCoverTask struct {
	BookID   string `json:"book_id"`
	CoverURL string `json:"cover_url"`
}

// Config returns the queue configuration for cover caching tasks.
func (t CacheCoverTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cache_cover",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CacheCoverProcessor creates a processor function for CacheCoverTask.
func CacheCoverProcessor(cache *covers.Cache) backlite.QueueProcessor[CacheCoverTask] {
	return func(ctx context.Context, task CacheCoverTask) error {
		if cache == nil {
			return fmt.Errorf("cover cache not configured")
		}
		if task.CoverURL == "" {
			return nil
		}

		path, err := cache.GetCover(task.BookID, task.CoverURL)
		if err != nil {
			return fmt.Errorf("cache cover for book %s: %w", task.BookID, err)
		}

		log.Printf("[TASK] Cached cover for book %s at %s", task.BookID, path)
		return nil
	}
}

// NewCacheCoverQueue creates a backlite queue for cover caching tasks.
func NewCacheCoverQueue(cache *covers.Cache) backlite.Queue {
	return backlite.NewQueue(CacheCoverProcessor(cache))
}
