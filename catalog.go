package bookshelf

import "github.com/agentstation/bookshelf/pkg/catalogs"

// Catalog provides copy-on-read access to the catalog.
type Catalog interface {
	Catalog() *catalogs.Catalog
}

// Catalog returns a deep copy of the current catalog.
func (c *client) Catalog() *catalogs.Catalog {
	return c.catalog.Copy()
}
