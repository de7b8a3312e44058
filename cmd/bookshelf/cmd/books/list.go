package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
)

// NewListCommand creates the list command.
func NewListCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List every genre and its books",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shelf, err := app.Bookshelf(cmd.Context())
			if err != nil {
				return err
			}
			return printerFor(cmd, app).Shelves(shelf.List())
		},
	}
}
