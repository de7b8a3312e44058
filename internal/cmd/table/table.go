// Package table converts catalog values into rows for the table formatter.
package table

import (
	"strconv"

	"github.com/agentstation/bookshelf/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// NoBooks fills the title column of a genre without books.
const NoBooks = "(no books)"

// BooksToTableData numbers books from 1 in the given order.
func BooksToTableData(books []catalogs.Book) Data {
	rows := make([][]string, 0, len(books))
	for i, b := range books {
		rows = append(rows, []string{strconv.Itoa(i + 1), b.Title, b.Author})
	}
	return Data{
		Headers:         []string{"#", "Title", "Author"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft},
	}
}

// MatchesToTableData lists search results with their genre.
func MatchesToTableData(matches []catalogs.Match) Data {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{m.Book.Title, m.Book.Author, m.Genre})
	}
	return Data{
		Headers: []string{"Title", "Author", "Genre"},
		Rows:    rows,
	}
}

// ShelvesToTableData lists every genre with its numbered books. An empty
// genre still gets one row.
func ShelvesToTableData(shelves []catalogs.Shelf) Data {
	var rows [][]string
	for _, s := range shelves {
		if len(s.Books) == 0 {
			rows = append(rows, []string{s.Genre, "-", NoBooks, "-"})
			continue
		}
		for i, b := range s.Books {
			rows = append(rows, []string{s.Genre, strconv.Itoa(i + 1), b.Title, b.Author})
		}
	}
	return Data{
		Headers:         []string{"Genre", "#", "Title", "Author"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft, AlignLeft},
	}
}
