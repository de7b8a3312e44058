// Package app provides the application context and dependency management
// for the bookshelf CLI. It centralizes configuration, logging, and the
// lifecycle of the bookshelf client and its store.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/store"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the bookshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Bookshelf client (lazy-initialized, loaded once)
	bookshelf bookshelf.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment that
// can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Quiet reports whether confirmations should be suppressed.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Bookshelf returns the bookshelf client, opening the configured store and
// loading the catalog on first use.
func (a *App) Bookshelf(ctx context.Context) (bookshelf.Client, error) {
	if a.bookshelf != nil {
		return a.bookshelf, nil
	}

	st, err := store.Open(a.storeConfig())
	if err != nil {
		return nil, errors.WrapResource("open", "store", a.config.Store, err)
	}

	client, err := bookshelf.New(
		bookshelf.WithStore(st),
		bookshelf.WithLogger(a.logger),
		bookshelf.WithMaxBooks(a.config.MaxBooks),
	)
	if err != nil {
		_ = st.Close()
		return nil, errors.WrapResource("create", "bookshelf", "", err)
	}

	client.OnLoaded(func(location string, books int) {
		a.logger.Info().Str("store", location).Int("books", books).Msg("Catalog loaded")
	})
	client.OnSaved(func(location string, books int) {
		a.logger.Debug().Str("store", location).Int("books", books).Msg("Catalog saved")
	})

	// An unreadable catalog file is reported once and the session starts
	// empty. Malformed content in strict mode and capacity errors still fail.
	if err := client.Load(ctx); err != nil {
		if !errors.IsIOError(err) {
			_ = client.Close()
			return nil, err
		}
		a.logger.Warn().Err(err).Str("store", st.Location()).
			Msg("Could not read catalog, starting with an empty one")
	}

	a.bookshelf = client
	return client, nil
}

// storeConfig translates the application configuration for store.Open.
func (a *App) storeConfig() store.Config {
	cfg := store.Config{
		Kind:   a.config.Store,
		Path:   a.config.File,
		Dir:    a.config.BadgerDir,
		Strict: a.config.StrictLoad,
	}
	if a.config.MaxBooks > 0 {
		cfg.CatalogOptions = []catalogs.Option{catalogs.WithMaxBooks(a.config.MaxBooks)}
	}
	return cfg
}

// Shutdown releases the store. It does not save; commands save
// explicitly after a successful change.
func (a *App) Shutdown(_ context.Context) error {
	if a.bookshelf == nil {
		return nil
	}
	err := a.bookshelf.Close()
	a.bookshelf = nil
	return err
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithBookshelf sets a custom bookshelf client (useful for testing).
func WithBookshelf(client bookshelf.Client) Option {
	return func(a *App) error {
		a.bookshelf = client
		return nil
	}
}
