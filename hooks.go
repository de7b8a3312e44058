package bookshelf

import "github.com/agentstation/bookshelf/pkg/catalogs"

// Hook function types for catalog events
type (
	// BookAddedHook is called after a book is added to a genre
	BookAddedHook func(genre string, book catalogs.Book)

	// BookRemovedHook is called after a book is removed from a genre
	BookRemovedHook func(genre string, book catalogs.Book)

	// LoadedHook is called after the catalog is loaded from its store
	LoadedHook func(location string, books int)

	// SavedHook is called after the catalog is written to its store
	SavedHook func(location string, books int)
)

// Hooks provides event callback registration.
type Hooks interface {
	// OnBookAdded registers a callback for when books are added
	OnBookAdded(BookAddedHook)

	// OnBookRemoved registers a callback for when books are removed
	OnBookRemoved(BookRemovedHook)

	// OnLoaded registers a callback for when the catalog is loaded
	OnLoaded(LoadedHook)

	// OnSaved registers a callback for when the catalog is saved
	OnSaved(SavedHook)
}

// hooks manages event callbacks for catalog changes
type hooks struct {
	onBookAdded   []BookAddedHook
	onBookRemoved []BookRemovedHook
	onLoaded      []LoadedHook
	onSaved       []SavedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnBookAdded registers a callback for when books are added.
func (c *client) OnBookAdded(fn BookAddedHook) {
	c.hooks.onBookAdded = append(c.hooks.onBookAdded, fn)
}

// OnBookRemoved registers a callback for when books are removed.
func (c *client) OnBookRemoved(fn BookRemovedHook) {
	c.hooks.onBookRemoved = append(c.hooks.onBookRemoved, fn)
}

// OnLoaded registers a callback for when the catalog is loaded.
func (c *client) OnLoaded(fn LoadedHook) {
	c.hooks.onLoaded = append(c.hooks.onLoaded, fn)
}

// OnSaved registers a callback for when the catalog is saved.
func (c *client) OnSaved(fn SavedHook) {
	c.hooks.onSaved = append(c.hooks.onSaved, fn)
}

func (h *hooks) bookAdded(genre string, book catalogs.Book) {
	for _, fn := range h.onBookAdded {
		fn(genre, book)
	}
}

func (h *hooks) bookRemoved(genre string, book catalogs.Book) {
	for _, fn := range h.onBookRemoved {
		fn(genre, book)
	}
}

func (h *hooks) loaded(location string, books int) {
	for _, fn := range h.onLoaded {
		fn(location, books)
	}
}

func (h *hooks) saved(location string, books int) {
	for _, fn := range h.onSaved {
		fn(location, books)
	}
}
