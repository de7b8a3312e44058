package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

func setup(t *testing.T) *appcontext.Mock {
	t.Helper()
	client, err := bookshelf.New(
		bookshelf.WithPath(filepath.Join(t.TempDir(), "books.txt")),
		bookshelf.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	_, err = client.AddBook("Sci-Fi", "Dune", "Herbert")
	require.NoError(t, err)
	return appcontext.NewWithClient(client)
}

func execute(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "bookshelf", SilenceUsage: true, SilenceErrors: true}
	root.AddGroup(&cobra.Group{ID: "management", Title: "Management Commands:"})
	root.AddCommand(NewCommand(app))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"export"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportFormats(t *testing.T) {
	app := setup(t)

	tests := []struct {
		format string
		want   string
	}{
		{format: "text", want: constants.BOM + "GENRE:Sci-Fi\nTITLE:Dune\nAUTHOR:Herbert\nENDGENRE\n"},
		{format: "json", want: `"title": "Dune"`},
		{format: "yaml", want: "title: Dune"},
		{format: "md", want: "## Sci-Fi"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := execute(t, app, tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestExportToFile(t *testing.T) {
	app := setup(t)
	path := filepath.Join(t.TempDir(), "books.md")

	out, err := execute(t, app, "markdown", "--to", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported markdown to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dune")
}

func TestExportCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "2024", "books.yaml")

	_, err := execute(t, setup(t), "yaml", "--to", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Dune")
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := execute(t, setup(t), "pdf")
	assert.True(t, errors.IsValidationError(err))
}
