package bookshelf

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/store"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Option is a function that configures a Client instance.
type Option func(*options)

// options holds the configuration for a Client instance.
type options struct {
	store   store.Store
	catalog *catalogs.Catalog
	logger  *zerolog.Logger

	// default file store settings
	path     string
	strict   bool
	maxBooks int
}

// defaults returns options with default values.
func defaults() *options {
	return &options{
		path:   constants.DefaultCatalogFile,
		logger: logging.Default(),
	}
}

// apply applies the given options to the options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// catalogOptions translates client options into catalog options.
func (o *options) catalogOptions() []catalogs.Option {
	if o.maxBooks <= 0 {
		return nil
	}
	return []catalogs.Option{catalogs.WithMaxBooks(o.maxBooks)}
}

// WithStore configures the store used by Load and Save.
func WithStore(s store.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithCatalog configures the initial catalog. Load replaces it.
func WithCatalog(cat *catalogs.Catalog) Option {
	return func(o *options) {
		o.catalog = cat
	}
}

// WithLogger configures the logger used for diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPath configures the text file used when no store is given.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithStrict makes the default file store reject malformed files.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithMaxBooks caps the number of books in the initial catalog and in
// catalogs loaded by the default file store. Zero means no limit.
func WithMaxBooks(limit int) Option {
	return func(o *options) {
		o.maxBooks = limit
	}
}
