package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// Apply CSRF protection if auth is enabled
	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Apply session middleware if enabled
	// Session runs after CSRF so session context isn't overwritten by CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	// Apply auth middleware if enabled. It never rejects; it only resolves
	// the session user so handlers can decide per endpoint.
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	// Register auth routes if auth service is available
	if cfg.AuthService != nil && cfg.AuthService.IsAuthEnabled() {
		authController := auth.NewController(cfg.AuthService, cfg.SessionManager, cfg.Notifier)
		authController.RegisterRoutes(router)
	}

	// Create controllers with appropriate dependencies
	health := NewHealthController(cfg.Database, cfg.Catalog, cfg.Version)
	booksController := NewBooksController(cfg.Catalog, cfg.TaskClient)
	reviewsController := NewReviewsController(cfg.Catalog)
	favouritesController := NewFavouritesController(cfg.Catalog)
	var coversController *CoversController
	if cfg.CoverCache != nil {
		coversController = NewCoversController(cfg.CoverCache, cfg.Catalog)
	}

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// CSRF token endpoint for browser clients
	if len(cfg.CSRFSecret) > 0 {
		router.GET("/api/csrf-token", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"csrfToken": auth.CSRFToken(c)})
		})
	}

	// Books API endpoints
	router.GET("/api/books", booksController.GetAllBooks)
	router.GET("/api/books/search", booksController.SearchBooks)
	router.GET("/api/books/browse", booksController.BrowseBooks)
	router.GET("/api/books/:id", booksController.GetBook)
	router.POST("/api/books", booksController.CreateBook)
	router.GET("/api/genres", booksController.GetGenres)

	// Review endpoints
	router.GET("/api/books/:id/reviews", reviewsController.GetReviews)
	router.POST("/api/books/:id/reviews", reviewsController.CreateReview)

	// Favourites endpoints
	router.POST("/api/books/:id/favourite", favouritesController.ToggleFavourite)
	router.GET("/api/favourites", favouritesController.ListFavourites)
	router.GET("/api/favourites/count", favouritesController.GetFavouriteCount)

	// Book cover endpoint
	if coversController != nil {
		router.GET("/api/books/:id/cover", coversController.GetCover)
	}

	return router
}
