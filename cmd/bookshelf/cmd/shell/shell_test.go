package shell

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/logging"
)

func session(t *testing.T, input string, opts ...bookshelf.Option) (bookshelf.Client, string) {
	t.Helper()
	opts = append([]bookshelf.Option{
		bookshelf.WithPath(filepath.Join(t.TempDir(), "books.txt")),
		bookshelf.WithLogger(logging.NewNopLogger()),
	}, opts...)
	client, err := bookshelf.New(opts...)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, New(client, strings.NewReader(input), &out).Run(context.Background()))
	return client, out.String()
}

func reload(t *testing.T, client bookshelf.Client) bookshelf.Client {
	t.Helper()
	c, err := bookshelf.New(bookshelf.WithPath(client.Location()))
	require.NoError(t, err)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestAddAndSaveExit(t *testing.T) {
	input := strings.Join([]string{
		"1", "Sci-Fi", "Dune", "Frank Herbert",
		"1", "Sci-Fi", "Foundation", "Isaac Asimov",
		"6",
	}, "\n") + "\n"

	client, out := session(t, input)
	assert.Contains(t, out, `Book "Dune" by Frank Herbert added to genre "Sci-Fi"`)
	assert.Contains(t, out, "Catalog saved to")
	assert.Contains(t, out, "Goodbye.")

	books, err := reload(t, client).Recommend("Sci-Fi")
	require.NoError(t, err)
	assert.Equal(t, []catalogs.Book{
		{Title: "Foundation", Author: "Isaac Asimov"},
		{Title: "Dune", Author: "Frank Herbert"},
	}, books)
}

func TestInvalidChoiceReprompts(t *testing.T) {
	_, out := session(t, "abc\n9\n0\n6\n")
	assert.Equal(t, 3, strings.Count(out, "Invalid option. Try again."))
	assert.Equal(t, 4, strings.Count(out, "Choose an option: "))
}

func TestEmptyTextReprompts(t *testing.T) {
	client, out := session(t, "1\n\nHorror\n\nIt\nKing\n6\n")
	assert.Equal(t, 2, strings.Count(out, "Genre: "))
	assert.Equal(t, 2, strings.Count(out, "Book title: "))
	assert.Len(t, client.List(), 1)
}

func TestEOFSavesAndExits(t *testing.T) {
	client, out := session(t, "1\nHorror\nIt\nKing\n")
	assert.Contains(t, out, "Catalog saved to")
	assert.Len(t, reload(t, client).List(), 1)
}

func TestEOFMidActionSavesAndExits(t *testing.T) {
	client, out := session(t, "1\nHorror\nIt\nKing\n1\nHorror\n")
	assert.Contains(t, out, "Goodbye.")
	books, err := reload(t, client).Recommend("Horror")
	require.NoError(t, err)
	assert.Len(t, books, 1, "the unfinished add is dropped")
}

func TestRecommendSearchRemoveList(t *testing.T) {
	input := strings.Join([]string{
		"1", "Horror", "It", "Stephen King",
		"2", "Horror",
		"2", "Romance",
		"3", "IT",
		"3", "Dune",
		"4", "Horror", "Dune",
		"4", "Romance", "It",
		"4", "Horror", "it",
		"5",
		"6",
	}, "\n") + "\n"

	client, out := session(t, input)
	assert.Contains(t, out, `Recommendations for "Horror"`)
	assert.Contains(t, out, `No books found for genre "Romance"`)
	assert.Contains(t, out, "Found 1 matching book(s)")
	assert.Contains(t, out, `book "Dune" not found`)
	assert.Contains(t, out, `book "Dune" not found in "Horror"`)
	assert.Contains(t, out, `genre "Romance" not found`)
	assert.Contains(t, out, `Book "It" removed from genre "Horror"`)
	assert.Contains(t, out, "No books in the catalog")

	assert.Len(t, client.List(), 1, "the emptied genre is kept")
}

func TestCapacityIsReported(t *testing.T) {
	input := "1\nA\nx\ny\n1\nA\nz\nw\n6\n"
	client, out := session(t, input, bookshelf.WithMaxBooks(1))
	assert.Contains(t, out, "Could not add book")
	assert.Equal(t, 1, client.Catalog().BookCount())
}
