// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested with Mock.
package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
)

// Interface defines the application context that commands need.
type Interface interface {
	// Bookshelf returns the loaded bookshelf, opening its store and
	// loading the catalog on first use.
	Bookshelf(ctx context.Context) (bookshelf.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Quiet reports whether confirmations should be suppressed.
	Quiet() bool

	// Version returns the application version string.
	Version() string
}
