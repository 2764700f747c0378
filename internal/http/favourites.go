package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven/internal/catalog"
)

type FavouritesController struct {
	store *catalog.Store
}

func NewFavouritesController(store *catalog.Store) *FavouritesController {
	return &FavouritesController{store: store}
}

// ToggleFavourite flips a book's favourite state and reports the new state.
// POST /api/books/:id/favourite
func (controller *FavouritesController) ToggleFavourite(c *gin.Context) {
	id := c.Param("id")
	if _, ok := controller.store.BookByID(id); !ok {
		respondNotFound(c, "book")
		return
	}

	favourite := controller.store.ToggleFavorite(id)
	c.JSON(http.StatusOK, gin.H{
		"bookId":    id,
		"favourite": favourite,
	})
}

// ListFavourites returns the favourite books in the order they were added,
// plus the raw id list for clients that only need membership.
// GET /api/favourites
func (controller *FavouritesController) ListFavourites(c *gin.Context) {
	books := controller.store.FavoriteBooks()
	c.IndentedJSON(http.StatusOK, gin.H{
		"books": books,
		"ids":   controller.store.FavoriteBookIDs(),
		"count": len(books),
	})
}

// GetFavouriteCount returns only the favourite count.
// GET /api/favourites/count
func (controller *FavouritesController) GetFavouriteCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": len(controller.store.FavoriteBookIDs())})
}
