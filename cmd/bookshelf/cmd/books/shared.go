package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// printerFor builds a Printer on the command's output stream.
func printerFor(cmd *cobra.Command, app appcontext.Interface) *Printer {
	return NewPrinter(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), app.Quiet())
}
