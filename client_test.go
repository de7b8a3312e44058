package bookshelf

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/store"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

func newTestClient(t *testing.T, opts ...Option) Client {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.txt")
	opts = append([]Option{WithPath(path), WithLogger(logging.NewNopLogger())}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestAddAndRecommend(t *testing.T) {
	c := newTestClient(t)

	_, err := c.AddBook("Sci-Fi", "Dune", "Herbert")
	require.NoError(t, err)
	_, err = c.AddBook("Sci-Fi", "Foundation", "Asimov")
	require.NoError(t, err)

	books, err := c.Recommend("Sci-Fi")
	require.NoError(t, err)
	assert.Equal(t, []catalogs.Book{
		{Title: "Foundation", Author: "Asimov"},
		{Title: "Dune", Author: "Herbert"},
	}, books)
}

func TestRecommendMissingOrEmptyGenre(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Recommend("Horror")
	assert.True(t, errors.IsGenreNotFound(err))

	_, err = c.AddBook("Horror", "It", "King")
	require.NoError(t, err)
	_, err = c.Remove("Horror", "it")
	require.NoError(t, err)

	_, err = c.Recommend("Horror")
	assert.True(t, errors.IsGenreNotFound(err), "an emptied genre has nothing to recommend")
	assert.Len(t, c.List(), 1, "the emptied genre is still listed")
}

func TestSearch(t *testing.T) {
	c := newTestClient(t)
	_, _ = c.AddBook("Horror", "It", "King")
	_, _ = c.AddBook("Kids", "IT", "Someone")

	matches, err := c.Search("it")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	_, err = c.Search("Dune")
	assert.True(t, errors.IsBookNotFound(err))
}

func TestRemoveErrors(t *testing.T) {
	c := newTestClient(t)
	_, _ = c.AddBook("Horror", "It", "King")

	_, err := c.Remove("Nope", "It")
	assert.True(t, errors.IsGenreNotFound(err))

	_, err = c.Remove("Horror", "Dune")
	assert.True(t, errors.IsBookNotFound(err))
}

func TestCatalogIsACopy(t *testing.T) {
	c := newTestClient(t)
	_, _ = c.AddBook("Horror", "It", "King")

	cp := c.Catalog()
	_, _ = cp.AddBook("Horror", "Carrie", "King")

	books, err := c.Recommend("Horror")
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestMaxBooks(t *testing.T) {
	c := newTestClient(t, WithMaxBooks(1))

	_, err := c.AddBook("Horror", "It", "King")
	require.NoError(t, err)
	_, err = c.AddBook("Horror", "Carrie", "King")
	assert.True(t, errors.IsCapacity(err))

	books, _ := c.Recommend("Horror")
	assert.Len(t, books, 1)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.txt")

	first, err := New(WithPath(path))
	require.NoError(t, err)
	require.NoError(t, first.Load(ctx), "a missing file loads as an empty catalog")
	assert.Empty(t, first.List())

	_, _ = first.AddBook("Sci-Fi", "Dune", "Herbert")
	_, _ = first.AddBook("Horror", "It", "King")
	require.NoError(t, first.Save(ctx))

	second, err := New(WithStore(store.NewFileStore(path, false)))
	require.NoError(t, err)
	require.NoError(t, second.Load(ctx))
	assert.Equal(t, first.List(), second.List())
	assert.Equal(t, path, second.Location())
}

func TestLoadFailure(t *testing.T) {
	// A directory cannot be read as a catalog file.
	c, err := New(WithPath(t.TempDir()))
	require.NoError(t, err)

	err = c.Load(context.Background())
	require.Error(t, err)
	assert.False(t, store.IsMissing(err))
}

func TestSaveLogsStoreContext(t *testing.T) {
	logger := logging.NewTestLogger(t)
	path := filepath.Join(t.TempDir(), "books.txt")

	c, err := New(WithPath(path), WithLogger(logger.Logger))
	require.NoError(t, err)
	require.NoError(t, c.Save(context.Background()))

	logger.AssertContains(t, `"operation":"save"`)
	logger.AssertContains(t, `"store":"`+path+`"`)
	logger.AssertContains(t, "Saved catalog file")
}
