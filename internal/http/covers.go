package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven/internal/catalog"
	"github.com/bookhaven/bookhaven/internal/covers"
)

// CoversController handles book cover requests.
type CoversController struct {
	cache *covers.Cache
	store *catalog.Store
}

// NewCoversController creates a new CoversController.
func NewCoversController(cache *covers.Cache, store *catalog.Store) *CoversController {
	return &CoversController{
		cache: cache,
		store: store,
	}
}

// GetCover serves a cached book cover image.
// GET /api/books/:id/cover
func (cc *CoversController) GetCover(c *gin.Context) {
	book, ok := cc.store.BookByID(c.Param("id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if book.CoverURL == "" {
		c.Status(http.StatusNotFound)
		return
	}

	// Get cached cover (will fetch if not cached)
	cachePath, err := cc.cache.GetCover(book.ID, book.CoverURL)
	if err != nil || cachePath == "" {
		// Fallback: redirect to original URL
		c.Redirect(http.StatusTemporaryRedirect, book.CoverURL)
		return
	}

	// Serve the cached file
	c.File(cachePath)
}
