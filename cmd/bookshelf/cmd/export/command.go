// Package export provides the export command.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/persistence"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the export command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:     "export <text|json|yaml|markdown>",
		GroupID: "management",
		Short:   "Write the whole catalog in another format",
		Long: `Export writes every genre and book, in catalog order, to stdout or
to the file given with --to, creating its directory if needed. The text format is the one the catalog file
itself uses.`,
		Example: `  bookshelf export markdown --to books.md
  bookshelf export yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"text", "json", "yaml", "markdown"},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			format, err := persistence.ParseFormat(args[0])
			if err != nil {
				return err
			}

			shelf, err := app.Bookshelf(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if to != "" {
				if err := os.MkdirAll(filepath.Dir(to), constants.DirPermissions); err != nil {
					return errors.WrapIO("create", filepath.Dir(to), err)
				}
				f, err := os.OpenFile(to, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
				if err != nil {
					return errors.WrapIO("open", to, err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = errors.WrapIO("close", to, cerr)
					}
				}()
				w = f
			}

			if err := persistence.Export(w, shelf.Catalog(), format); err != nil {
				return errors.WrapResource("export", "catalog", string(format), err)
			}

			if to != "" && !app.Quiet() {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", format, to)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "write to this file instead of stdout")

	return cmd
}
