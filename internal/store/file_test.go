package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.txt")
	s := NewFileStore(path, false)

	cat := sampleCatalog(t)
	require.NoError(t, s.Save(ctx, cat))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cat.List(), loaded.List())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) >= 3 && string(data[:3]) == constants.BOM)
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent.txt"), false)

	cat, err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, IsMissing(err))
	require.NotNil(t, cat)
	assert.Equal(t, 0, cat.Len())
}

func TestFileStoreOpenFailure(t *testing.T) {
	// A directory cannot be opened for writing.
	s := NewFileStore(t.TempDir(), false)

	err := s.Save(context.Background(), catalogs.New())
	require.Error(t, err)
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
	assert.False(t, IsMissing(err))
}

func TestFileStoreSaveTruncates(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.txt")
	s := NewFileStore(path, false)

	require.NoError(t, s.Save(ctx, sampleCatalog(t)))
	require.NoError(t, s.Save(ctx, catalogs.New()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, constants.BOM, string(data))
}

func TestFileStoreStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")
	require.NoError(t, os.WriteFile(path, []byte("TITLE:Lost\nAUTHOR:Nobody\n"), 0o644))

	_, err := NewFileStore(path, true).Load(context.Background())
	var perr *errors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.File)
	assert.Equal(t, 1, perr.Line)

	cat, err := NewFileStore(path, false).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, cat.Recommend(""), 1)
}

func TestFileStoreCatalogOptions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.txt")
	require.NoError(t, NewFileStore(path, false).Save(ctx, sampleCatalog(t)))

	_, err := NewFileStore(path, false, catalogs.WithMaxBooks(2)).Load(ctx)
	assert.True(t, errors.IsCapacity(err))
}
