// Package persistence converts catalogs to and from their on-disk
// representations. The line oriented text format is the primary one:
//
//	GENRE:<name>
//	TITLE:<title>
//	AUTHOR:<author>
//	ENDGENRE
//
// optionally preceded by a UTF-8 byte order mark.
package persistence

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// formatText names the text format in parse errors.
const formatText = "text"

// DecodeOption configures text decoding.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	strict  bool
	file    string
	catalog []catalogs.Option
}

// WithStrict rejects records the lenient decoder would silently repair:
// a TITLE outside any GENRE block, a TITLE without AUTHOR, and
// unrecognized lines.
func WithStrict(strict bool) DecodeOption {
	return func(o *decodeOptions) {
		o.strict = strict
	}
}

// WithFileName sets the file name reported in parse errors.
func WithFileName(name string) DecodeOption {
	return func(o *decodeOptions) {
		o.file = name
	}
}

// WithCatalogOptions passes options to the catalog being built.
func WithCatalogOptions(opts ...catalogs.Option) DecodeOption {
	return func(o *decodeOptions) {
		o.catalog = append(o.catalog, opts...)
	}
}

// pendingGenre collects a genre's books in file order.
type pendingGenre struct {
	name  string
	books []catalogs.Book
}

// lineReader yields lines without their terminator and counts them.
type lineReader struct {
	r    *bufio.Reader
	line int
}

func (lr *lineReader) next() (string, bool, error) {
	s, err := lr.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if s == "" && err == io.EOF {
		return "", false, nil
	}
	lr.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true, nil
}

// Decode reads a text catalog.
//
// A GENRE line opens a bucket (created even if it gets no books) and
// ENDGENRE closes it. A TITLE line must be followed directly by an AUTHOR
// line; otherwise the book is dropped and the following line is consumed.
// In lenient mode a TITLE outside any block is filed under the empty genre.
//
// Books keep their file order, so encoding the result reproduces the input.
func Decode(r io.Reader, opts ...DecodeOption) (*catalogs.Catalog, error) {
	o := &decodeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	br := bufio.NewReader(r)
	if head, err := br.Peek(len(constants.BOM)); err == nil && bytes.Equal(head, []byte(constants.BOM)) {
		_, _ = br.Discard(len(constants.BOM))
	}
	lr := &lineReader{r: br}

	var (
		order   []*pendingGenre
		byName  = map[string]*pendingGenre{}
		current string
		active  bool
	)
	genre := func(name string) *pendingGenre {
		name = catalogs.Truncate(name, constants.MaxGenreLength)
		if p, ok := byName[name]; ok {
			return p
		}
		p := &pendingGenre{name: name}
		byName[name] = p
		order = append(order, p)
		return p
	}
	parseErr := func(msg string) error {
		return &errors.ParseError{Format: formatText, File: o.file, Line: lr.line, Message: msg}
	}

	for {
		line, ok, err := lr.next()
		if err != nil {
			return nil, errors.WrapIO("read", o.file, err)
		}
		if !ok {
			break
		}

		switch {
		case strings.HasPrefix(line, constants.GenrePrefix):
			current = strings.TrimPrefix(line, constants.GenrePrefix)
			active = true
			genre(current)

		case strings.HasPrefix(line, constants.TitlePrefix):
			if !active && o.strict {
				return nil, parseErr("TITLE outside of a GENRE block")
			}
			title := strings.TrimPrefix(line, constants.TitlePrefix)

			next, ok, err := lr.next()
			if err != nil {
				return nil, errors.WrapIO("read", o.file, err)
			}
			if !ok || !strings.HasPrefix(next, constants.AuthorPrefix) {
				if o.strict {
					return nil, parseErr("TITLE not followed by AUTHOR")
				}
				continue
			}
			author := strings.TrimPrefix(next, constants.AuthorPrefix)
			p := genre(current)
			p.books = append(p.books, catalogs.NewBook(title, author))

		case line == constants.GenreEnd:
			current = ""
			active = false

		default:
			if o.strict {
				return nil, parseErr("unrecognized line")
			}
		}
	}

	return build(order, o.catalog)
}

// build creates genres and books in reverse so that head insertion leaves
// them in input order.
func build(order []*pendingGenre, opts []catalogs.Option) (*catalogs.Catalog, error) {
	cat := catalogs.New(opts...)
	for i := len(order) - 1; i >= 0; i-- {
		p := order[i]
		cat.AddGenre(p.name)
		for j := len(p.books) - 1; j >= 0; j-- {
			if _, err := cat.AddBook(p.name, p.books[j].Title, p.books[j].Author); err != nil {
				return nil, err
			}
		}
	}
	return cat, nil
}

// FromShelves rebuilds a catalog from shelves as produced by Catalog.List.
// Books keep their order; genres that share a hash slot keep their
// relative order, so List on the result returns the same shelves.
func FromShelves(shelves []catalogs.Shelf, opts ...catalogs.Option) (*catalogs.Catalog, error) {
	order := make([]*pendingGenre, 0, len(shelves))
	for _, s := range shelves {
		order = append(order, &pendingGenre{name: s.Genre, books: s.Books})
	}
	return build(order, opts)
}

// lineBreaks keeps field values on a single line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Encode writes the catalog in store order, preceded by a byte order mark.
// Nothing is reordered or deduplicated.
func Encode(w io.Writer, cat *catalogs.Catalog) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(constants.BOM); err != nil {
		return err
	}
	for g := range cat.Genres() {
		writeLine(bw, constants.GenrePrefix, g.Name())
		for b := range g.All() {
			writeLine(bw, constants.TitlePrefix, b.Title)
			writeLine(bw, constants.AuthorPrefix, b.Author)
		}
		writeLine(bw, constants.GenreEnd, "")
	}
	return bw.Flush()
}

// writeLine ignores errors; bufio.Writer keeps the first one for Flush.
func writeLine(bw *bufio.Writer, prefix, value string) {
	_, _ = bw.WriteString(prefix)
	_, _ = bw.WriteString(lineBreaks.Replace(value))
	_ = bw.WriteByte('\n')
}
