// Package books provides the one-shot catalog commands (add, recommend,
// search, remove, list) and the printer shared with the interactive shell.
package books

import (
	"io"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
)

// Printer renders command results and confirmations.
type Printer struct {
	out    io.Writer
	format output.Format
	alerts alerts.Writer
	quiet  bool
}

// NewPrinter creates a Printer writing to out. Quiet suppresses success
// and info alerts; warnings, errors and results are always written.
func NewPrinter(out io.Writer, format output.Format, quiet bool) *Printer {
	return &Printer{
		out:    out,
		format: format,
		alerts: alerts.NewFormatWriter(out, format),
		quiet:  quiet,
	}
}

// Alert writes a single alert.
func (p *Printer) Alert(a *alerts.Alert) error {
	if p.quiet && (a.Level == alerts.LevelSuccess || a.Level == alerts.LevelInfo) {
		return nil
	}
	return p.alerts.WriteAlert(a)
}

// Added confirms a new book.
func (p *Printer) Added(genre string, book catalogs.Book) error {
	genre = catalogs.Truncate(genre, constants.MaxGenreLength)
	return p.Alert(alerts.Successf("Book %q by %s added to genre %q", book.Title, book.Author, genre))
}

// Removed confirms a removal.
func (p *Printer) Removed(genre string, book catalogs.Book) error {
	genre = catalogs.Truncate(genre, constants.MaxGenreLength)
	return p.Alert(alerts.Successf("Book %q removed from genre %q", book.Title, genre))
}

// Saved confirms a save.
func (p *Printer) Saved(location string) error {
	return p.Alert(alerts.Successf("Catalog saved to %q", location))
}

// Recommendations prints the books of a genre.
func (p *Printer) Recommendations(genre string, books []catalogs.Book) error {
	if p.format == output.FormatTable {
		if err := p.Alert(alerts.Infof("Recommendations for %q", genre)); err != nil {
			return err
		}
	}
	return output.Write(p.out, p.format, table.BooksToTableData(books), books)
}

// Matches prints search results.
func (p *Printer) Matches(matches []catalogs.Match) error {
	if p.format == output.FormatTable {
		if err := p.Alert(alerts.Successf("Found %d matching book(s)", len(matches))); err != nil {
			return err
		}
	}
	return output.Write(p.out, p.format, table.MatchesToTableData(matches), matches)
}

// Shelves prints every genre. A catalog without any book gets a warning
// after the listing; empty genres are still shown.
func (p *Printer) Shelves(shelves []catalogs.Shelf) error {
	if len(shelves) > 0 || p.format != output.FormatTable {
		if err := output.Write(p.out, p.format, table.ShelvesToTableData(shelves), shelves); err != nil {
			return err
		}
	}

	for _, s := range shelves {
		if len(s.Books) > 0 {
			return nil
		}
	}
	return p.Alert(alerts.NewWarning("No books in the catalog"))
}
