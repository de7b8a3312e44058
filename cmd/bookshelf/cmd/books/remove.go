package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <genre> <title>",
		Aliases: []string{"rm"},
		GroupID: "core",
		Short:   "Remove a book from a genre",
		Long: `Remove deletes the first book in the genre whose title matches
case-insensitively, then saves the catalog. The genre itself is kept
even when it becomes empty.`,
		Example: `  bookshelf remove Sci-Fi dune`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			shelf, err := app.Bookshelf(ctx)
			if err != nil {
				return err
			}

			book, err := shelf.Remove(args[0], args[1])
			if err != nil {
				return err
			}
			if err := shelf.Save(ctx); err != nil {
				return err
			}

			p := printerFor(cmd, app)
			if err := p.Removed(args[0], book); err != nil {
				return err
			}
			return p.Saved(shelf.Location())
		},
	}
}
