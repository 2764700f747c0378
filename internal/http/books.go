package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven/internal/catalog"
	"github.com/bookhaven/bookhaven/internal/tasks"
)

type BooksController struct {
	store      *catalog.Store
	taskClient *tasks.Client
}

func NewBooksController(store *catalog.Store, taskClient *tasks.Client) *BooksController {
	return &BooksController{
		store:      store,
		taskClient: taskClient,
	}
}

// GetAllBooks returns the full collection together with the startup loading
// flag so clients can render a spinner until the catalog settles.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books := controller.store.Books()
	c.IndentedJSON(http.StatusOK, gin.H{
		"books":     books,
		"count":     len(books),
		"isLoading": controller.store.IsLoading(),
	})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	book, ok := controller.store.BookByID(c.Param("id"))
	if !ok {
		respondNotFound(c, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	var input catalog.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid book payload: "+err.Error())
		return
	}

	book, err := controller.store.AddBook(input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTitleRequired),
			errors.Is(err, catalog.ErrAuthorRequired),
			errors.Is(err, catalog.ErrYearInvalid):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "create book")
		}
		return
	}

	// Warm the cover cache in the background so the first cover request
	// doesn't block on the upstream fetch.
	if controller.taskClient != nil && book.CoverURL != "" {
		task := tasks.CacheCoverTask{
			BookID:   book.ID,
			CoverURL: book.CoverURL,
		}
		if _, err := controller.taskClient.Add(task).Save(); err != nil {
			// The book is already stored; a cold cover cache is acceptable.
			log.Printf("Failed to enqueue cover caching for book %s: %v", book.ID, err)
		}
	}

	respondCreated(c, book)
}

// SearchBooks matches the query against title, author and genre. An empty
// query returns the whole collection.
func (controller *BooksController) SearchBooks(c *gin.Context) {
	query := c.Query("q")
	books := controller.store.SearchBooks(query)
	c.IndentedJSON(http.StatusOK, gin.H{
		"books": books,
		"count": len(books),
		"query": query,
	})
}

// BrowseBooks filters by exact genre and sorts by the requested key.
// GET /api/books/browse?genre=Fantasy&sort=year
func (controller *BooksController) BrowseBooks(c *gin.Context) {
	genre := c.DefaultQuery("genre", catalog.GenreAll)
	sortKey := catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortTitle)))
	if !catalog.ValidSortKey(sortKey) {
		respondBadRequest(c, "unknown sort key: "+string(sortKey))
		return
	}

	books := controller.store.Browse(genre, sortKey)
	c.IndentedJSON(http.StatusOK, gin.H{
		"books": books,
		"count": len(books),
		"genre": genre,
		"sort":  sortKey,
	})
}

func (controller *BooksController) GetGenres(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{"genres": controller.store.Genres()})
}
