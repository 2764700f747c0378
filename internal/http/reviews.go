package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven/internal/auth"
	"github.com/bookhaven/bookhaven/internal/catalog"
)

type ReviewsController struct {
	store *catalog.Store
}

func NewReviewsController(store *catalog.Store) *ReviewsController {
	return &ReviewsController{store: store}
}

// CreateReview appends a review to a book. The reviewer name comes from the
// session, never from the payload; anonymous requests are rejected.
// POST /api/books/:id/reviews
func (controller *ReviewsController) CreateReview(c *gin.Context) {
	userName, ok := auth.CurrentUserName(c)
	if !ok {
		respondUnauthorized(c, "sign in to write a review")
		return
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid review payload: "+err.Error())
		return
	}

	review, err := controller.store.AddReview(c.Param("id"), catalog.ReviewInput{
		UserName: userName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBookNotFound):
			respondNotFound(c, "book")
		case errors.Is(err, catalog.ErrRatingOutOfRange),
			errors.Is(err, catalog.ErrUserNameRequired):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "create review")
		}
		return
	}

	respondCreated(c, review)
}

// GetReviews lists a book's reviews.
// GET /api/books/:id/reviews
func (controller *ReviewsController) GetReviews(c *gin.Context) {
	book, ok := controller.store.BookByID(c.Param("id"))
	if !ok {
		respondNotFound(c, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"reviews": book.Reviews,
		"count":   len(book.Reviews),
	})
}
