package catalog

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bookhaven/bookhaven/internal/entities"
)

// SortKey names the browse sort orders. The string values are the ones the
// browse page sends.
type SortKey string

const (
	SortTitle    SortKey = "title"    // title ascending, locale-aware
	SortAuthor   SortKey = "author"   // author ascending, locale-aware
	SortYear     SortKey = "year"     // year ascending, numeric
	SortYearDesc SortKey = "yearDesc" // year descending, numeric
)

// GenreAll disables genre filtering.
const GenreAll = "all"

// ValidSortKey reports whether key is one of the supported sort orders.
func ValidSortKey(key SortKey) bool {
	switch key {
	case SortTitle, SortAuthor, SortYear, SortYearDesc:
		return true
	}
	return false
}

// FilterAndSort filters books by exact genre match (skipped for GenreAll or
// an empty genre) and sorts by the given key. The sort is stable and operates
// on a copy; the input slice is never reordered.
func FilterAndSort(books []entities.Book, genre string, key SortKey) []entities.Book {
	filtered := make([]entities.Book, 0, len(books))
	for _, book := range books {
		if genre == "" || genre == GenreAll || book.Genre == genre {
			filtered = append(filtered, book)
		}
	}

	switch key {
	case SortTitle:
		c := collate.New(language.English)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	case SortAuthor:
		c := collate.New(language.English)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Author, filtered[j].Author) < 0
		})
	case SortYear:
		sort.SliceStable(filtered, func(i, j int) bool {
			return yearOf(filtered[i]) < yearOf(filtered[j])
		})
	case SortYearDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return yearOf(filtered[i]) > yearOf(filtered[j])
		})
	}

	return filtered
}

// Browse runs the genre filter and sort over the current collection.
func (s *Store) Browse(genre string, key SortKey) []entities.Book {
	return FilterAndSort(s.Books(), genre, key)
}

// Genres returns the distinct genres of the collection in first-appearance
// order, for the browse page's filter dropdown.
func (s *Store) Genres() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, book := range s.books {
		if _, ok := seen[book.Genre]; ok {
			continue
		}
		seen[book.Genre] = struct{}{}
		genres = append(genres, book.Genre)
	}
	return genres
}

// yearOf parses the year field for numeric sorts. Unparseable years sort
// first; validation keeps them out of new books but persisted state is
// not re-validated.
func yearOf(b entities.Book) int {
	year, err := strconv.Atoi(b.Year)
	if err != nil {
		return 0
	}
	return year
}
