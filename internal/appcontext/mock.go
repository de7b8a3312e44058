package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
)

// Compile-time interface check to ensure proper implementation.
var _ Interface = (*Mock)(nil)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	BookshelfFunc    func(context.Context) (bookshelf.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	QuietFunc        func() bool
	VersionFunc      func() string
}

// Bookshelf returns a client using the mock function or nil.
func (m *Mock) Bookshelf(ctx context.Context) (bookshelf.Client, error) {
	if m.BookshelfFunc != nil {
		return m.BookshelfFunc(ctx)
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Quiet returns quiet using the mock function or false.
func (m *Mock) Quiet() bool {
	if m.QuietFunc != nil {
		return m.QuietFunc()
	}
	return false
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// NewWithClient returns a Mock that always hands out client.
func NewWithClient(client bookshelf.Client) *Mock {
	return &Mock{
		BookshelfFunc: func(context.Context) (bookshelf.Client, error) {
			return client, nil
		},
	}
}
