package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
)

// NewAddCommand creates the add command.
func NewAddCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "add <genre> <title> <author>",
		GroupID: "core",
		Short:   "Add a book to a genre",
		Long: `Add files a book under a genre and saves the catalog.

The genre is created if it does not exist yet. Genre names are case
sensitive; fields longer than the catalog limits are truncated.`,
		Example: `  bookshelf add Sci-Fi Dune "Frank Herbert"
  bookshelf add "Ficção" "Dom Casmurro" "Machado de Assis"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			shelf, err := app.Bookshelf(ctx)
			if err != nil {
				return err
			}

			book, err := shelf.AddBook(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if err := shelf.Save(ctx); err != nil {
				return err
			}

			p := printerFor(cmd, app)
			if err := p.Added(args[0], book); err != nil {
				return err
			}
			return p.Saved(shelf.Location())
		},
	}
}
