package catalogs

import (
	"iter"
	"slices"
)

// Genre is a bucket of books sharing one genre name.
// Books are kept most recently added first.
type Genre struct {
	name  string
	books []Book
}

// Name returns the genre name.
func (g *Genre) Name() string {
	return g.name
}

// Len returns the number of books in the genre.
func (g *Genre) Len() int {
	return len(g.books)
}

// Books returns a copy of the books, most recently added first.
func (g *Genre) Books() []Book {
	return slices.Clone(g.books)
}

// All iterates the books in list order.
func (g *Genre) All() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, b := range g.books {
			if !yield(b) {
				return
			}
		}
	}
}

// Shelf returns a snapshot of the genre.
func (g *Genre) Shelf() Shelf {
	books := g.Books()
	if books == nil {
		books = []Book{}
	}
	return Shelf{Genre: g.name, Books: books}
}

// prepend puts b at the head of the list.
func (g *Genre) prepend(b Book) {
	g.books = slices.Insert(g.books, 0, b)
}

// removeAt unlinks the book at index i.
func (g *Genre) removeAt(i int) Book {
	b := g.books[i]
	g.books = slices.Delete(g.books, i, i+1)
	return b
}
