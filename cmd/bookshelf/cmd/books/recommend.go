package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
)

// NewRecommendCommand creates the recommend command.
func NewRecommendCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "recommend <genre>",
		Aliases: []string{"rec"},
		GroupID: "core",
		Short:   "List the books of a genre, newest first",
		Example: `  bookshelf recommend Sci-Fi
  bookshelf recommend Horror -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shelf, err := app.Bookshelf(cmd.Context())
			if err != nil {
				return err
			}

			books, err := shelf.Recommend(args[0])
			if err != nil {
				return err
			}
			return printerFor(cmd, app).Recommendations(args[0], books)
		},
	}
}
