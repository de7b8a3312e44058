// Package store persists catalogs. The file store keeps the plain text
// format; the badger store keeps one key per genre in an embedded
// key-value database.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
)

// Store loads and saves a whole catalog.
type Store interface {
	// Load reads the persisted catalog. When nothing has been saved yet it
	// returns an empty catalog together with an error for which IsMissing
	// reports true.
	Load(ctx context.Context) (*catalogs.Catalog, error)

	// Save replaces the persisted catalog with cat.
	Save(ctx context.Context, cat *catalogs.Catalog) error

	// Location describes where the catalog lives.
	Location() string

	// Close releases held resources.
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	// Kind is constants.StoreFile or constants.StoreBadger.
	Kind string

	// Path is the text catalog file for the file store.
	Path string

	// Dir is the database directory for the badger store.
	Dir string

	// Strict rejects malformed text files instead of repairing them.
	Strict bool

	// CatalogOptions are applied to every loaded catalog.
	CatalogOptions []catalogs.Option
}

// Open returns the backend described by cfg.
func Open(cfg Config) (Store, error) {
	switch cfg.Kind {
	case "", constants.StoreFile:
		path := cfg.Path
		if path == "" {
			path = constants.DefaultCatalogFile
		}
		return NewFileStore(path, cfg.Strict, cfg.CatalogOptions...), nil
	case constants.StoreBadger:
		dir := cfg.Dir
		if dir == "" {
			dir = constants.DefaultBadgerDir
		}
		return OpenBadgerStore(dir, cfg.CatalogOptions...)
	default:
		return nil, pkgerrors.NewConfigError("store", "unknown store kind "+cfg.Kind, nil)
	}
}

// errNoCatalog marks a backend that has never been saved to.
var errNoCatalog = fmt.Errorf("no catalog saved: %w", fs.ErrNotExist)

// IsMissing reports whether err means no catalog has been saved yet.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// checkContext maps a done context to ErrCanceled.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(pkgerrors.ErrCanceled, err)
	}
	return nil
}
