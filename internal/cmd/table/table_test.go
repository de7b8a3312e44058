package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/bookshelf/pkg/catalogs"
)

func TestShelvesToTableData(t *testing.T) {
	data := ShelvesToTableData([]catalogs.Shelf{
		{Genre: "Sci-Fi", Books: []catalogs.Book{{Title: "Foundation", Author: "Asimov"}, {Title: "Dune", Author: "Herbert"}}},
		{Genre: "Poetry", Books: []catalogs.Book{}},
	})

	assert.Equal(t, []string{"Genre", "#", "Title", "Author"}, data.Headers)
	assert.Equal(t, [][]string{
		{"Sci-Fi", "1", "Foundation", "Asimov"},
		{"Sci-Fi", "2", "Dune", "Herbert"},
		{"Poetry", "-", NoBooks, "-"},
	}, data.Rows)
}

func TestMatchesToTableData(t *testing.T) {
	data := MatchesToTableData([]catalogs.Match{{Book: catalogs.Book{Title: "It", Author: "King"}, Genre: "Horror"}})
	assert.Equal(t, [][]string{{"It", "King", "Horror"}}, data.Rows)
}

func TestBooksToTableData(t *testing.T) {
	data := BooksToTableData(nil)
	assert.Empty(t, data.Rows)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}
