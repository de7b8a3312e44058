package catalogs

// Option configures a Catalog.
type Option func(*Catalog)

// WithTableSize sets the number of hash slots. Values below 1 are ignored.
func WithTableSize(size int) Option {
	return func(c *Catalog) {
		if size > 0 {
			c.slots = make([][]*Genre, size)
		}
	}
}

// WithMaxBooks caps the number of books the catalog accepts.
// Zero means unlimited.
func WithMaxBooks(limit int) Option {
	return func(c *Catalog) {
		if limit >= 0 {
			c.maxBooks = limit
		}
	}
}
