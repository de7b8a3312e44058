// Package bookshelf provides the main entry point for the personal book
// catalog. It wraps a catalogs.Catalog with persistence through a
// store.Store and with event hooks that fire as books are added, removed,
// loaded and saved.
//
// Example usage:
//
//	shelf, err := bookshelf.New(bookshelf.WithStore(store.NewFileStore("books.txt", false)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shelf.Close()
//
//	if err := shelf.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	shelf.OnBookAdded(func(genre string, book catalogs.Book) {
//	    fmt.Printf("Added %q to %s\n", book.Title, genre)
//	})
//
//	if _, err := shelf.AddBook("Sci-Fi", "Dune", "Frank Herbert"); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := shelf.Save(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// A Client is meant for a single goroutine; it performs no locking.
package bookshelf

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/store"
	"github.com/agentstation/bookshelf/pkg/catalogs"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages a book catalog, its persistence and event hooks.
type Client interface {

	// Catalog provides copy-on-read access to the catalog
	Catalog

	// Commands mutate and query the catalog
	Commands

	// Persistence loads and saves the catalog through the configured store
	Persistence

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	catalog *catalogs.Catalog
	store   store.Store
	logger  *zerolog.Logger
	hooks   *hooks
}

// New creates a new Client instance with the given options. Without
// WithStore the catalog lives in the default text file.
func New(opts ...Option) (Client, error) {
	o := defaults().apply(opts...)

	c := &client{
		options: o,
		catalog: o.catalog,
		store:   o.store,
		logger:  o.logger,
		hooks:   newHooks(),
	}

	if c.catalog == nil {
		c.catalog = catalogs.New(o.catalogOptions()...)
	}
	if c.store == nil {
		c.store = store.NewFileStore(o.path, o.strict, o.catalogOptions()...)
	}

	c.logger.Debug().
		Str("store", c.store.Location()).
		Int("max_books", o.maxBooks).
		Msg("Created bookshelf client")

	return c, nil
}
