package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/entities"
	"github.com/bookhaven/bookhaven/internal/kvstore"
)

func TestFilterAndSort(t *testing.T) {
	books := SeedBooks()

	t.Run("genre all keeps everything", func(t *testing.T) {
		assert.Len(t, FilterAndSort(books, GenreAll, SortTitle), len(books))
		assert.Len(t, FilterAndSort(books, "", SortTitle), len(books))
	})

	t.Run("exact genre match", func(t *testing.T) {
		for _, book := range FilterAndSort(books, "Computer Science", SortTitle) {
			assert.Equal(t, "Computer Science", book.Genre)
		}
		assert.Len(t, FilterAndSort(books, "Computer Science", SortTitle), 4)
		assert.Empty(t, FilterAndSort(books, "computer science", SortTitle), "genre match is exact, not case-folded")
	})

	t.Run("year ascending is numerically non-decreasing", func(t *testing.T) {
		sorted := FilterAndSort(books, "Computer Science", SortYear)
		require.Len(t, sorted, 4)
		assert.Equal(t, []string{"2016", "2019", "2020", "2021"}, years(sorted))
	})

	t.Run("year descending", func(t *testing.T) {
		sorted := FilterAndSort(books, "Computer Science", SortYearDesc)
		assert.Equal(t, []string{"2021", "2020", "2019", "2016"}, years(sorted))
	})

	t.Run("title ascending", func(t *testing.T) {
		sorted := FilterAndSort(books, GenreAll, SortTitle)
		assert.Equal(t, "1984", sorted[0].Title)
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1].Title, sorted[i].Title)
		}
	})

	t.Run("author ascending", func(t *testing.T) {
		sorted := FilterAndSort(books, "Classic", SortAuthor)
		require.Len(t, sorted, 2)
		assert.Equal(t, "F. Scott Fitzgerald", sorted[0].Author)
		assert.Equal(t, "Harper Lee", sorted[1].Author)
	})

	t.Run("stable for equal keys and input untouched", func(t *testing.T) {
		input := []entities.Book{
			{ID: "a", Title: "Alpha", Year: "1990"},
			{ID: "b", Title: "Beta", Year: "1990"},
			{ID: "c", Title: "Gamma", Year: "1980"},
		}
		sorted := FilterAndSort(input, GenreAll, SortYear)
		assert.Equal(t, []string{"c", "a", "b"}, ids(sorted), "equal years keep insertion order")
		assert.Equal(t, []string{"a", "b", "c"}, ids(input), "input order preserved")
	})
}

func TestValidSortKey(t *testing.T) {
	assert.True(t, ValidSortKey(SortTitle))
	assert.True(t, ValidSortKey(SortYearDesc))
	assert.False(t, ValidSortKey("rating"))
	assert.False(t, ValidSortKey(""))
}

func TestStore_BrowseAndGenres(t *testing.T) {
	kv := kvstore.NewMemory()
	store, err := New(Options{KV: kv})
	require.NoError(t, err)

	sorted := store.Browse("Computer Science", SortYear)
	assert.Equal(t, []string{"2016", "2019", "2020", "2021"}, years(sorted))

	assert.Equal(t, []string{"Classic", "Dystopian", "Fantasy", "Computer Science"}, store.Genres())
}

func years(books []entities.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Year
	}
	return out
}

func ids(books []entities.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}
