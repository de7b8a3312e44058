package output

import (
	"io"

	"github.com/agentstation/bookshelf/internal/cmd/table"
)

// Write renders a command result. Table output uses rows; JSON and YAML
// encode value.
func Write(w io.Writer, format Format, rows table.Data, value any) error {
	switch format {
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, value)
	default:
		return NewFormatter(FormatTable).Format(w, rows)
	}
}
