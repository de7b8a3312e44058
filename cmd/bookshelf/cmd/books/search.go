package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "search <title>",
		GroupID: "core",
		Short:   "Find books by title in every genre",
		Long: `Search compares the whole title case-insensitively and lists
every match together with its genre.`,
		Example: `  bookshelf search dune`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shelf, err := app.Bookshelf(cmd.Context())
			if err != nil {
				return err
			}

			matches, err := shelf.Search(args[0])
			if err != nil {
				return err
			}
			return printerFor(cmd, app).Matches(matches)
		},
	}
}
