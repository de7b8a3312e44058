package bookshelf

import (
	"context"

	"github.com/agentstation/bookshelf/internal/store"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Load replaces the catalog with the stored one. A store that holds
	// nothing yet leaves an empty catalog and is not an error.
	Load(ctx context.Context) error

	// Save writes the catalog to the store.
	Save(ctx context.Context) error

	// Location describes where the catalog is stored.
	Location() string

	// Close releases the store.
	Close() error
}

// Load implements Persistence.
func (c *client) Load(ctx context.Context) error {
	ctx = c.logContext(ctx, "load")
	cat, err := c.store.Load(ctx)
	switch {
	case store.IsMissing(err):
		logging.FromContext(ctx).Debug().Msg("No saved catalog, starting empty")
	case err != nil:
		return errors.WrapResource("load", "catalog", c.store.Location(), err)
	}

	c.catalog = cat
	c.hooks.loaded(c.store.Location(), cat.BookCount())
	return nil
}

// Save implements Persistence.
func (c *client) Save(ctx context.Context) error {
	ctx = c.logContext(ctx, "save")
	if err := c.store.Save(ctx, c.catalog); err != nil {
		return errors.WrapResource("save", "catalog", c.store.Location(), err)
	}
	c.hooks.saved(c.store.Location(), c.catalog.BookCount())
	return nil
}

// logContext carries the client logger, tagged with the store and the
// operation, down to the store.
func (c *client) logContext(ctx context.Context, operation string) context.Context {
	ctx = logging.WithLogger(ctx, c.logger)
	ctx = logging.WithStore(ctx, c.store.Location())
	return logging.WithOperation(ctx, operation)
}

// Location implements Persistence.
func (c *client) Location() string {
	return c.store.Location()
}

// Close implements Persistence.
func (c *client) Close() error {
	return c.store.Close()
}
