// Package imports provides the import command.
package imports

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/persistence"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the import command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "import <text|json|yaml> <file>",
		GroupID: "management",
		Short:   "Add the books of an exported catalog",
		Long: `Import reads a file written by export and adds its books to the
catalog, then saves. Each genre's imported books come first, in the order
of the file. Genres without books are skipped.`,
		Example: `  bookshelf import yaml books.yaml
  bookshelf import text backup/books.txt`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"text", "json", "yaml"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := persistence.ParseFormat(args[0])
			if err != nil {
				return err
			}
			path := args[1]

			imported, err := read(path, format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			shelf, err := app.Bookshelf(ctx)
			if err != nil {
				return err
			}

			count, err := merge(shelf, imported)
			if err != nil {
				return err
			}
			if err := shelf.Save(ctx); err != nil {
				return err
			}

			if app.Quiet() {
				return nil
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d books from %s\n", count, path)
			return err
		},
	}
}

// read decodes the file at path.
func read(path string, format persistence.Format) (*catalogs.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	cat, err := persistence.Import(f, format)
	if err != nil {
		return nil, errors.WrapResource("import", "catalog", path, err)
	}
	return cat, nil
}

// merge adds every imported book through the client so hooks and the
// capacity limit apply. Books are added last to first so that they end
// up in file order at the head of their genre.
func merge(shelf bookshelf.Client, imported *catalogs.Catalog) (int, error) {
	count := 0
	for _, s := range imported.List() {
		for i := len(s.Books) - 1; i >= 0; i-- {
			if _, err := shelf.AddBook(s.Genre, s.Books[i].Title, s.Books[i].Author); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
