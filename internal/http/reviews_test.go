package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/auth"
	"github.com/bookhaven/bookhaven/internal/catalog"
)

// sessionUser injects an authenticated user the way the auth middleware does.
func sessionUser(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, uint(1))
		c.Set(auth.ContextKeyUserName, name)
		c.Next()
	}
}

func newReviewsRouter(store *catalog.Store, middleware ...gin.HandlerFunc) *gin.Engine {
	controller := NewReviewsController(store)
	router := gin.New()
	router.Use(middleware...)
	router.GET("/api/books/:id/reviews", controller.GetReviews)
	router.POST("/api/books/:id/reviews", controller.CreateReview)
	return router
}

func TestReviewsController_CreateReview(t *testing.T) {
	t.Run("appends review with session user name", func(t *testing.T) {
		store := newTestCatalog(t)
		router := newReviewsRouter(store, sessionUser("Alice"))

		payload := `{"rating":5,"comment":"Loved it"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books/1/reviews", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var review map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
		assert.Equal(t, "Alice", review["userName"])
		assert.EqualValues(t, 5, review["rating"])
		assert.NotEmpty(t, review["id"])
		assert.NotEmpty(t, review["date"])

		book, ok := store.BookByID("1")
		require.True(t, ok)
		assert.Equal(t, "Loved it", book.Reviews[len(book.Reviews)-1].Comment)
	})

	t.Run("rejects anonymous requests", func(t *testing.T) {
		store := newTestCatalog(t)
		router := newReviewsRouter(store)

		payload := `{"rating":4,"comment":"fine"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books/1/reviews", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns 404 for unknown book", func(t *testing.T) {
		store := newTestCatalog(t)
		router := newReviewsRouter(store, sessionUser("Alice"))

		payload := `{"rating":4,"comment":"fine"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books/999/reviews", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		store := newTestCatalog(t)
		router := newReviewsRouter(store, sessionUser("Alice"))

		for _, payload := range []string{`{"rating":0}`, `{"rating":6}`} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/books/1/reviews", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	})
}

func TestReviewsController_GetReviews(t *testing.T) {
	t.Run("lists a book's reviews", func(t *testing.T) {
		store := newTestCatalog(t)
		router := newReviewsRouter(store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/1/reviews", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Reviews []map[string]any `json:"reviews"`
			Count   int              `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, len(response.Reviews), response.Count)
		assert.NotEmpty(t, response.Reviews)
	})

	t.Run("returns 404 for unknown book", func(t *testing.T) {
		store := newTestCatalog(t)
		router := newReviewsRouter(store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/999/reviews", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
