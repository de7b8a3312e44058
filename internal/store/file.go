package store

import (
	"context"
	"os"

	"github.com/agentstation/bookshelf/internal/persistence"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps the catalog in a single text file. The file is opened
// right before each load or save and closed right after.
//
// Saving truncates and rewrites the file in place, so a crash during a
// save can lose the previous contents.
type FileStore struct {
	path    string
	strict  bool
	catOpts []catalogs.Option
}

// NewFileStore creates a store for the file at path.
func NewFileStore(path string, strict bool, opts ...catalogs.Option) *FileStore {
	return &FileStore{path: path, strict: strict, catOpts: opts}
}

// Location returns the file path.
func (s *FileStore) Location() string {
	return s.path
}

// Load implements Store.
func (s *FileStore) Load(ctx context.Context) (*catalogs.Catalog, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return catalogs.New(s.catOpts...), errors.WrapIO("open", s.path, err)
	}
	defer f.Close()

	cat, err := persistence.Decode(f,
		persistence.WithStrict(s.strict),
		persistence.WithFileName(s.path),
		persistence.WithCatalogOptions(s.catOpts...),
	)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("path", s.path).
		Int("genres", cat.Len()).
		Int("books", cat.BookCount()).
		Msg("Loaded catalog file")
	return cat, nil
}

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, cat *catalogs.Catalog) (err error) {
	if err := checkContext(ctx); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", s.path, cerr)
		}
	}()

	if err := persistence.Encode(f, cat); err != nil {
		return errors.WrapIO("write", s.path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", s.path).
		Int("books", cat.BookCount()).
		Msg("Saved catalog file")
	return nil
}

// Close implements Store. The file store holds nothing open between calls.
func (s *FileStore) Close() error {
	return nil
}
