// Package catalog is the single source of truth for the book collection and
// the favourite-id set. All reads and writes of that data flow through the
// Store; the HTTP layer only calls its exported operations.
//
// Every mutation updates memory first and then persists the full state to the
// key-value store. Persistence is best-effort: if a save fails the session
// keeps running on the in-memory state and the failure is surfaced through
// the notifier.
package catalog

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bookhaven/bookhaven/internal/entities"
	"github.com/bookhaven/bookhaven/internal/kvstore"
	"github.com/bookhaven/bookhaven/internal/notify"
)

// Storage keys. The names predate this server: they are the localStorage keys
// the original web client wrote, kept so existing state loads unchanged.
const (
	KeyBooks     = "bookhaven-books"
	KeyFavorites = "bookhaven-favorites"
)

// DefaultLoadingDelay mirrors the catalog-fetch latency the client simulated
// at startup.
const DefaultLoadingDelay = 1000 * time.Millisecond

var (
	ErrTitleRequired    = errors.New("book title is required")
	ErrAuthorRequired   = errors.New("book author is required")
	ErrYearInvalid      = errors.New("book year must be numeric")
	ErrBookNotFound     = errors.New("book not found")
	ErrUserNameRequired = errors.New("reviewer name is required")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// BookInput carries all Book fields except the store-assigned id and reviews.
type BookInput struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Year        string `json:"year"`
	CoverURL    string `json:"coverUrl"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

// ReviewInput carries all Review fields except the store-assigned id and date.
type ReviewInput struct {
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// Snapshot is the full persisted state of the catalog, used for round-trip
// backups and exports.
type Snapshot struct {
	Books           []entities.Book `json:"books"`
	FavoriteBookIDs []string        `json:"favoriteBookIds"`
}

// Store holds the catalog state. Operations are safe for concurrent use;
// queries return copies so callers can never reach the underlying slices.
type Store struct {
	kv       kvstore.Store
	notifier notify.Notifier
	ids      IDGenerator
	now      func() time.Time

	mu          sync.RWMutex
	books       []entities.Book
	favoriteIDs []string
	favoriteSet map[string]struct{}

	loading atomic.Bool
}

// Options configures a Store. KV is required; the remaining dependencies
// default to the production implementations.
type Options struct {
	KV       kvstore.Store
	Notifier notify.Notifier
	IDs      IDGenerator
	Now      func() time.Time

	// LoadingDelay is how long IsLoading stays true after creation. Zero is
	// valid (the flag still transitions exactly once); use DefaultLoadingDelay
	// for the interactive behavior.
	LoadingDelay time.Duration
}

// New creates the catalog store, seeding it from persisted state when present
// or from the built-in book list otherwise. First-run seeds are persisted
// immediately so the storage keys exist from then on.
func New(opts Options) (*Store, error) {
	if opts.KV == nil {
		return nil, errors.New("catalog: KV store is required")
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.IDs == nil {
		opts.IDs = UUIDGenerator{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Store{
		kv:       opts.KV,
		notifier: opts.Notifier,
		ids:      opts.IDs,
		now:      opts.Now,
	}

	s.loadOrSeed()

	s.loading.Store(true)
	time.AfterFunc(opts.LoadingDelay, func() {
		s.loading.Store(false)
	})

	return s, nil
}

func (s *Store) loadOrSeed() {
	var books []entities.Book
	found, err := s.kv.Load(KeyBooks, &books)
	switch {
	case err != nil:
		log.Printf("Catalog: failed to load books, falling back to seed data: %v", err)
		s.notifier.Notify(notify.KindError, "Catalog unavailable", "Stored books could not be read; starting from the built-in collection.")
		books = SeedBooks()
	case !found:
		books = SeedBooks()
		s.saveOrWarn(KeyBooks, books)
	}

	var favoriteIDs []string
	found, err = s.kv.Load(KeyFavorites, &favoriteIDs)
	switch {
	case err != nil:
		log.Printf("Catalog: failed to load favorites: %v", err)
		s.notifier.Notify(notify.KindError, "Favorites unavailable", "Stored favorites could not be read; starting with an empty list.")
		favoriteIDs = nil
	case !found:
		favoriteIDs = []string{}
		s.saveOrWarn(KeyFavorites, favoriteIDs)
	}

	s.books = books
	s.favoriteIDs = favoriteIDs
	s.favoriteSet = make(map[string]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		s.favoriteSet[id] = struct{}{}
	}
}

// saveOrWarn persists a key and degrades to a notification on failure. The
// in-memory state is authoritative for the rest of the session either way.
func (s *Store) saveOrWarn(key string, value any) {
	if err := s.kv.Save(key, value); err != nil {
		log.Printf("Catalog: failed to persist %s: %v", key, err)
		s.notifier.Notify(notify.KindError, "Sync failed", "Your latest change could not be saved and may be lost after a restart.")
	}
}

// IsLoading reports the one-shot startup latency flag: true from creation
// until the configured delay elapses, then permanently false.
func (s *Store) IsLoading() bool {
	return s.loading.Load()
}

// AddBook assigns a fresh id and an empty review list to the candidate,
// appends it to the collection, and persists. Title and author are required;
// year, when set, must be numeric so year sorts stay meaningful.
func (s *Store) AddBook(input BookInput) (entities.Book, error) {
	if strings.TrimSpace(input.Title) == "" {
		return entities.Book{}, ErrTitleRequired
	}
	if strings.TrimSpace(input.Author) == "" {
		return entities.Book{}, ErrAuthorRequired
	}
	if y := strings.TrimSpace(input.Year); y != "" && !isNumeric(y) {
		return entities.Book{}, ErrYearInvalid
	}

	s.mu.Lock()
	book := entities.Book{
		ID:          s.newBookID(),
		Title:       input.Title,
		Author:      input.Author,
		Year:        input.Year,
		CoverURL:    input.CoverURL,
		Genre:       input.Genre,
		Description: input.Description,
		Reviews:     []entities.Review{},
	}
	s.books = append(s.books, book)
	s.saveOrWarn(KeyBooks, s.books)
	s.mu.Unlock()

	s.notifier.Notify(notify.KindInfo, "Book added", book.Title+" has been added to the collection.")
	return cloneBook(book), nil
}

// AddReview appends a review to the targeted book, assigning an id and the
// submission date. Unlike the web client, a missing book is reported instead
// of silently ignored; nothing is persisted or notified in that case.
func (s *Store) AddReview(bookID string, input ReviewInput) (entities.Review, error) {
	if strings.TrimSpace(input.UserName) == "" {
		return entities.Review{}, ErrUserNameRequired
	}
	if input.Rating < 1 || input.Rating > 5 {
		return entities.Review{}, ErrRatingOutOfRange
	}

	s.mu.Lock()
	idx := s.indexOf(bookID)
	if idx < 0 {
		s.mu.Unlock()
		return entities.Review{}, ErrBookNotFound
	}

	review := entities.Review{
		ID:       s.newReviewID(),
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  input.Comment,
		Date:     s.now().Format("2006-01-02"),
	}
	s.books[idx].Reviews = append(s.books[idx].Reviews, review)
	s.saveOrWarn(KeyBooks, s.books)
	s.mu.Unlock()

	s.notifier.Notify(notify.KindInfo, "Review added", "Your review has been published. Thank you for your feedback!")
	return review, nil
}

// ToggleFavorite flips membership of bookID in the favourite-id set and
// reports the new state. The id is not checked against the collection: a
// favourite that never resolves to a book is legal and simply not displayed.
func (s *Store) ToggleFavorite(bookID string) bool {
	s.mu.Lock()
	_, favorite := s.favoriteSet[bookID]
	if favorite {
		delete(s.favoriteSet, bookID)
		for i, id := range s.favoriteIDs {
			if id == bookID {
				s.favoriteIDs = append(s.favoriteIDs[:i], s.favoriteIDs[i+1:]...)
				break
			}
		}
	} else {
		s.favoriteSet[bookID] = struct{}{}
		s.favoriteIDs = append(s.favoriteIDs, bookID)
	}
	s.saveOrWarn(KeyFavorites, s.favoriteIDs)
	s.mu.Unlock()

	if favorite {
		s.notifier.Notify(notify.KindInfo, "Removed from favorites", "This book has been removed from your favorites.")
	} else {
		s.notifier.Notify(notify.KindInfo, "Added to favorites", "This book has been added to your favorites.")
	}
	return !favorite
}

// SearchBooks filters the collection by a case-insensitive substring match
// against title, author, or genre. An empty or whitespace-only query returns
// the full collection. Order is preserved; the store is never mutated.
func (s *Store) SearchBooks(query string) []entities.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return cloneBooks(s.books)
	}

	var matches []entities.Book
	for _, book := range s.books {
		if strings.Contains(strings.ToLower(book.Title), term) ||
			strings.Contains(strings.ToLower(book.Author), term) ||
			strings.Contains(strings.ToLower(book.Genre), term) {
			matches = append(matches, cloneBook(book))
		}
	}
	if matches == nil {
		matches = []entities.Book{}
	}
	return matches
}

// BookByID looks up a book by exact id.
func (s *Store) BookByID(id string) (entities.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return entities.Book{}, false
	}
	return cloneBook(s.books[idx]), true
}

// Books returns the full collection in insertion order.
func (s *Store) Books() []entities.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBooks(s.books)
}

// FavoriteBookIDs returns the favourite ids in the order they were added.
func (s *Store) FavoriteBookIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.favoriteIDs))
	copy(out, s.favoriteIDs)
	return out
}

// IsFavorite reports membership of id in the favourite-id set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favoriteSet[id]
	return ok
}

// FavoriteBooks resolves the favourite ids against the collection, in
// favourite order. Ids that no longer resolve are skipped.
func (s *Store) FavoriteBooks() []entities.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]entities.Book, 0, len(s.favoriteIDs))
	for _, id := range s.favoriteIDs {
		if idx := s.indexOf(id); idx >= 0 {
			books = append(books, cloneBook(s.books[idx]))
		}
	}
	return books
}

// Snapshot returns a copy of the full persisted state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.favoriteIDs))
	copy(ids, s.favoriteIDs)
	return Snapshot{Books: cloneBooks(s.books), FavoriteBookIDs: ids}
}

// indexOf returns the position of id in the collection, or -1.
// Callers must hold the lock.
func (s *Store) indexOf(id string) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}

// newBookID draws generated ids until one is free of the collection, so a
// misbehaving generator can never violate id uniqueness.
func (s *Store) newBookID() string {
	id := s.ids.NewID()
	for s.indexOf(id) >= 0 {
		id = s.ids.NewID()
	}
	return id
}

func (s *Store) newReviewID() string {
	id := s.ids.NewID()
	for s.reviewIDExists(id) {
		id = s.ids.NewID()
	}
	return id
}

func (s *Store) reviewIDExists(id string) bool {
	for i := range s.books {
		for j := range s.books[i].Reviews {
			if s.books[i].Reviews[j].ID == id {
				return true
			}
		}
	}
	return false
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func cloneBook(b entities.Book) entities.Book {
	out := b
	out.Reviews = make([]entities.Review, len(b.Reviews))
	copy(out.Reviews, b.Reviews)
	return out
}

func cloneBooks(books []entities.Book) []entities.Book {
	out := make([]entities.Book, len(books))
	for i, b := range books {
		out[i] = cloneBook(b)
	}
	return out
}
