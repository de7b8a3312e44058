package persistence

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	md "github.com/nao1215/markdown"

	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Format identifies a catalog representation.
type Format string

const (
	// FormatText is the native line oriented format.
	FormatText Format = "text"
	// FormatJSON is a JSON document of all shelves.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document of all shelves.
	FormatYAML Format = "yaml"
	// FormatMarkdown is a human readable report.
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported export format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat converts s to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	default:
		return "", errors.NewValidationError("format", s, fmt.Sprintf("must be one of %v", Formats))
	}
}

// Document is the structured export of a catalog.
type Document struct {
	Genres  int              `json:"genres" yaml:"genres"`
	Books   int              `json:"books" yaml:"books"`
	Shelves []catalogs.Shelf `json:"shelves" yaml:"shelves"`
}

// NewDocument snapshots cat in store order.
func NewDocument(cat *catalogs.Catalog) Document {
	return Document{
		Genres:  cat.Len(),
		Books:   cat.BookCount(),
		Shelves: cat.List(),
	}
}

// Export writes cat to w in the given format.
func Export(w io.Writer, cat *catalogs.Catalog, format Format) error {
	switch format {
	case FormatText:
		return Encode(w, cat)
	case FormatJSON:
		return EncodeJSON(w, cat)
	case FormatYAML:
		return EncodeYAML(w, cat)
	case FormatMarkdown:
		return EncodeMarkdown(w, cat)
	default:
		return errors.NewValidationError("format", string(format), "unsupported export format")
	}
}

// EncodeJSON writes an indented JSON document.
func EncodeJSON(w io.Writer, cat *catalogs.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(cat))
}

// EncodeYAML writes a YAML document.
func EncodeYAML(w io.Writer, cat *catalogs.Catalog) error {
	data, err := yaml.MarshalWithOptions(NewDocument(cat),
		yaml.Indent(2),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return errors.WrapParse(string(FormatYAML), "", err)
	}
	_, err = w.Write(data)
	return err
}

// Import reads a catalog written by Export. Markdown reports cannot be
// read back.
func Import(r io.Reader, format Format, opts ...catalogs.Option) (*catalogs.Catalog, error) {
	switch format {
	case FormatText:
		return Decode(r, WithCatalogOptions(opts...))
	case FormatJSON:
		return DecodeJSON(r, opts...)
	case FormatYAML:
		return DecodeYAML(r, opts...)
	default:
		return nil, errors.NewValidationError("format", string(format), "cannot import this format")
	}
}

// DecodeJSON reads a document written by EncodeJSON. Shelves and books
// are restored in document order.
func DecodeJSON(r io.Reader, opts ...catalogs.Option) (*catalogs.Catalog, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapParse(string(FormatJSON), "", err)
	}
	return FromShelves(doc.Shelves, opts...)
}

// DecodeYAML reads a document written by EncodeYAML. Shelves and books
// are restored in document order.
func DecodeYAML(r io.Reader, opts ...catalogs.Option) (*catalogs.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse(string(FormatYAML), "", err)
	}
	return FromShelves(doc.Shelves, opts...)
}

// EncodeMarkdown writes a report with one section per genre.
func EncodeMarkdown(w io.Writer, cat *catalogs.Catalog) error {
	doc := md.NewMarkdown(w).
		H1("Book Catalog").
		PlainTextf("%d books in %d genres.", cat.BookCount(), cat.Len()).
		LF()

	for _, shelf := range cat.List() {
		title := shelf.Genre
		if title == "" {
			title = "(no genre)"
		}
		doc.H2(title)
		if len(shelf.Books) == 0 {
			doc.PlainText(md.Italic("No books.")).LF()
			continue
		}
		rows := make([][]string, 0, len(shelf.Books))
		for i, b := range shelf.Books {
			rows = append(rows, []string{strconv.Itoa(i + 1), b.Title, b.Author})
		}
		doc.Table(md.TableSet{
			Header: []string{"#", "Title", "Author"},
			Rows:   rows,
		}).LF()
	}

	return doc.Build()
}
