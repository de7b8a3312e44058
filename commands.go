package bookshelf

import (
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Compile-time interface check to ensure proper implementation.
var _ Commands = (*client)(nil)

// Commands are the catalog operations offered to users.
type Commands interface {
	// AddBook files a book under genre, creating the genre if needed.
	AddBook(genre, title, author string) (catalogs.Book, error)

	// Recommend lists the books of a genre, most recently added first.
	// It fails with a genre NotFoundError when the genre is absent or
	// has no books.
	Recommend(genre string) ([]catalogs.Book, error)

	// Search finds every book whose title matches case-insensitively.
	Search(title string) ([]catalogs.Match, error)

	// Remove deletes the first book in genre with a matching title.
	Remove(genre, title string) (catalogs.Book, error)

	// List returns every genre, including empty ones, in store order.
	List() []catalogs.Shelf
}

// AddBook implements Commands.
func (c *client) AddBook(genre, title, author string) (catalogs.Book, error) {
	book, err := c.catalog.AddBook(genre, title, author)
	if err != nil {
		return catalogs.Book{}, err
	}

	genre = catalogs.Truncate(genre, constants.MaxGenreLength)
	c.logger.Debug().Str("genre", genre).Str("title", book.Title).Msg("Added book")
	c.hooks.bookAdded(genre, book)
	return book, nil
}

// Recommend implements Commands.
func (c *client) Recommend(genre string) ([]catalogs.Book, error) {
	books := c.catalog.Recommend(genre)
	if len(books) == 0 {
		return nil, errors.NewGenreNotFound(catalogs.Truncate(genre, constants.MaxGenreLength))
	}
	return books, nil
}

// Search implements Commands.
func (c *client) Search(title string) ([]catalogs.Match, error) {
	matches := c.catalog.SearchByTitle(title)
	if len(matches) == 0 {
		return nil, errors.NewBookNotFound(catalogs.Truncate(title, constants.MaxTitleLength), "")
	}
	return matches, nil
}

// Remove implements Commands.
func (c *client) Remove(genre, title string) (catalogs.Book, error) {
	book, err := c.catalog.RemoveBook(genre, title)
	if err != nil {
		return catalogs.Book{}, err
	}

	genre = catalogs.Truncate(genre, constants.MaxGenreLength)
	c.logger.Debug().Str("genre", genre).Str("title", book.Title).Msg("Removed book")
	c.hooks.bookRemoved(genre, book)
	return book, nil
}

// List implements Commands.
func (c *client) List() []catalogs.Shelf {
	return c.catalog.List()
}
