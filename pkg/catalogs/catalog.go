// Package catalogs implements the in-memory book catalog: a fixed size hash
// table of genre buckets with chained collisions, each bucket holding its
// books most recently added first.
//
// A Catalog is owned by a single session and is not safe for concurrent use.
package catalogs

import (
	"iter"
	"slices"

	"golang.org/x/text/cases"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Catalog maps genre names to genre buckets.
//
// Genre lookup is exact and case-sensitive. Title lookup (search, remove)
// is case-insensitive. Buckets are never deleted, even when emptied.
type Catalog struct {
	// slots hold the collision chains; index 0 of a chain is its head.
	slots    [][]*Genre
	genres   int
	books    int
	maxBooks int
	fold     cases.Caser
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		slots: make([][]*Genre, constants.TableSize),
		fold:  cases.Fold(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of genre buckets.
func (c *Catalog) Len() int {
	return c.genres
}

// BookCount returns the number of books across all genres.
func (c *Catalog) BookCount() int {
	return c.books
}

// TableSize returns the number of hash slots.
func (c *Catalog) TableSize() int {
	return len(c.slots)
}

// FindGenre looks up a genre bucket by exact name.
func (c *Catalog) FindGenre(name string) (*Genre, bool) {
	name = Truncate(name, constants.MaxGenreLength)
	for _, g := range c.slots[c.slot(name)] {
		if g.name == name {
			return g, true
		}
	}
	return nil, false
}

// AddGenre returns the bucket for name, creating it at the head of its
// slot chain when it does not exist yet.
func (c *Catalog) AddGenre(name string) *Genre {
	name = Truncate(name, constants.MaxGenreLength)
	if g, ok := c.FindGenre(name); ok {
		return g
	}
	g := &Genre{name: name}
	i := c.slot(name)
	c.slots[i] = slices.Insert(c.slots[i], 0, g)
	c.genres++
	return g
}

// AddBook prepends a book to the genre, creating the genre if needed.
// Over-long fields are truncated. When the catalog is full a
// CapacityError is returned and nothing is changed.
func (c *Catalog) AddBook(genre, title, author string) (Book, error) {
	if c.maxBooks > 0 && c.books >= c.maxBooks {
		return Book{}, errors.NewCapacityError(errors.ResourceBook, c.maxBooks)
	}
	b := NewBook(title, author)
	c.AddGenre(genre).prepend(b)
	c.books++
	return b, nil
}

// RemoveBook unlinks the first book in genre whose title matches
// case-insensitively. Later duplicates are left in place.
func (c *Catalog) RemoveBook(genre, title string) (Book, error) {
	g, ok := c.FindGenre(genre)
	if !ok {
		return Book{}, errors.NewGenreNotFound(genre)
	}
	title = Truncate(title, constants.MaxTitleLength)
	for i, b := range g.books {
		if c.titleEqual(b.Title, title) {
			c.books--
			return g.removeAt(i), nil
		}
	}
	return Book{}, errors.NewBookNotFound(title, genre)
}

// Recommend returns the books of a genre, most recently added first.
// An absent genre yields an empty result.
func (c *Catalog) Recommend(genre string) []Book {
	g, ok := c.FindGenre(genre)
	if !ok {
		return nil
	}
	return g.Books()
}

// Genres iterates every bucket in store order: slots ascending, then
// chain order.
func (c *Catalog) Genres() iter.Seq[*Genre] {
	return func(yield func(*Genre) bool) {
		for _, chain := range c.slots {
			for _, g := range chain {
				if !yield(g) {
					return
				}
			}
		}
	}
}

// List returns a snapshot of every bucket in store order, empty ones included.
func (c *Catalog) List() []Shelf {
	shelves := make([]Shelf, 0, c.genres)
	for g := range c.Genres() {
		shelves = append(shelves, g.Shelf())
	}
	return shelves
}

// Matches lazily yields every book whose title equals title
// case-insensitively, across all genres.
func (c *Catalog) Matches(title string) iter.Seq[Match] {
	title = Truncate(title, constants.MaxTitleLength)
	return func(yield func(Match) bool) {
		for g := range c.Genres() {
			for _, b := range g.books {
				if c.titleEqual(b.Title, title) && !yield(Match{Book: b, Genre: g.name}) {
					return
				}
			}
		}
	}
}

// SearchByTitle collects all Matches for title.
func (c *Catalog) SearchByTitle(title string) []Match {
	return slices.Collect(c.Matches(title))
}

// Copy returns a deep copy preserving slot, chain and book order.
func (c *Catalog) Copy() *Catalog {
	out := &Catalog{
		slots:    make([][]*Genre, len(c.slots)),
		genres:   c.genres,
		books:    c.books,
		maxBooks: c.maxBooks,
		fold:     cases.Fold(),
	}
	for i, chain := range c.slots {
		if len(chain) == 0 {
			continue
		}
		out.slots[i] = make([]*Genre, len(chain))
		for j, g := range chain {
			out.slots[i][j] = &Genre{name: g.name, books: slices.Clone(g.books)}
		}
	}
	return out
}

func (c *Catalog) titleEqual(a, b string) bool {
	return c.fold.String(a) == c.fold.String(b)
}
