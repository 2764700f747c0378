package entities

// Book is a single catalog record. IDs are opaque strings assigned by the
// catalog store and never change after creation. The JSON field names match
// the shape the web client persisted, so an existing "bookhaven-books" blob
// loads unchanged.
type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Year        string   `json:"year"` // kept as text; parsed only for year sorts
	CoverURL    string   `json:"coverUrl"`
	Genre       string   `json:"genre"`
	Description string   `json:"description"`
	Reviews     []Review `json:"reviews"`
}

// Review is a reader-submitted review. Reviews are append-only: once attached
// to a book they are never reordered or removed.
type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"` // display name captured at submission time
	Rating   int    `json:"rating"`   // 1..5
	Comment  string `json:"comment"`
	Date     string `json:"date"` // YYYY-MM-DD, assigned by the store
}
