package catalogs

import (
	"unicode/utf8"

	"github.com/agentstation/bookshelf/pkg/constants"
)

// Book is a single catalog entry. It belongs to exactly one genre.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
}

// NewBook returns a book with title and author truncated to their limits.
func NewBook(title, author string) Book {
	return Book{
		Title:  Truncate(title, constants.MaxTitleLength),
		Author: Truncate(author, constants.MaxAuthorLength),
	}
}

// Match is a search hit: a book and the genre it was found in.
type Match struct {
	Book  Book   `json:"book" yaml:"book"`
	Genre string `json:"genre" yaml:"genre"`
}

// Shelf is a read-only snapshot of one genre bucket.
type Shelf struct {
	Genre string `json:"genre" yaml:"genre"`
	Books []Book `json:"books" yaml:"books"`
}

// Truncate cuts s to at most limit bytes without splitting a UTF-8 sequence.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
