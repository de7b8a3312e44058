package books

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

func newApp(t *testing.T) (*appcontext.Mock, bookshelf.Client) {
	t.Helper()
	client, err := bookshelf.New(
		bookshelf.WithPath(filepath.Join(t.TempDir(), "books.txt")),
		bookshelf.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return appcontext.NewWithClient(client), client
}

// run executes a command under a root that declares the "core" group.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "bookshelf", SilenceUsage: true, SilenceErrors: true}
	root.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{cmd.Name()}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAddSavesCatalog(t *testing.T) {
	app, client := newApp(t)

	out, err := run(t, NewAddCommand(app), "Sci-Fi", "Dune", "Frank Herbert")
	require.NoError(t, err)
	assert.Contains(t, out, `Book "Dune" by Frank Herbert added to genre "Sci-Fi"`)
	assert.Contains(t, out, "Catalog saved to")

	reloaded, err := bookshelf.New(bookshelf.WithPath(client.Location()))
	require.NoError(t, err)
	require.NoError(t, reloaded.Load(context.Background()))
	assert.Equal(t, client.List(), reloaded.List())
}

func TestAddRequiresThreeArgs(t *testing.T) {
	app, _ := newApp(t)
	_, err := run(t, NewAddCommand(app), "Sci-Fi", "Dune")
	assert.Error(t, err)
}

func TestRecommend(t *testing.T) {
	app, client := newApp(t)
	_, _ = client.AddBook("Sci-Fi", "Dune", "Herbert")
	_, _ = client.AddBook("Sci-Fi", "Foundation", "Asimov")

	out, err := run(t, NewRecommendCommand(app), "Sci-Fi")
	require.NoError(t, err)
	assert.Contains(t, out, `Recommendations for "Sci-Fi"`)
	assert.Less(t, bytes.Index([]byte(out), []byte("Foundation")), bytes.Index([]byte(out), []byte("Dune")),
		"most recently added first")

	_, err = run(t, NewRecommendCommand(app), "Horror")
	assert.True(t, errors.IsGenreNotFound(err))
}

func TestRecommendJSON(t *testing.T) {
	app, client := newApp(t)
	app.OutputFormatFunc = func() string { return "json" }
	_, _ = client.AddBook("Horror", "It", "King")

	out, err := run(t, NewRecommendCommand(app), "Horror")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"It","author":"King"}]`, out)
}

func TestSearch(t *testing.T) {
	app, client := newApp(t)
	_, _ = client.AddBook("Horror", "It", "King")
	_, _ = client.AddBook("Kids", "it", "Someone")

	out, err := run(t, NewSearchCommand(app), "IT")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 matching book(s)")
	assert.Contains(t, out, "Horror")
	assert.Contains(t, out, "Kids")

	_, err = run(t, NewSearchCommand(app), "Dune")
	assert.True(t, errors.IsBookNotFound(err))
}

func TestRemove(t *testing.T) {
	app, client := newApp(t)
	_, _ = client.AddBook("Horror", "It", "King")

	out, err := run(t, NewRemoveCommand(app), "Horror", "it")
	require.NoError(t, err)
	assert.Contains(t, out, `Book "It" removed from genre "Horror"`)

	_, err = run(t, NewRemoveCommand(app), "Horror", "it")
	assert.True(t, errors.IsBookNotFound(err))

	_, err = run(t, NewRemoveCommand(app), "Nope", "it")
	assert.True(t, errors.IsGenreNotFound(err))
}

func TestList(t *testing.T) {
	app, client := newApp(t)

	out, err := run(t, NewListCommand(app))
	require.NoError(t, err)
	assert.Contains(t, out, "No books in the catalog")

	_, _ = client.AddBook("Horror", "It", "King")
	_, _ = client.Remove("Horror", "It")
	_, _ = client.AddBook("Sci-Fi", "Dune", "Herbert")

	out, err = run(t, NewListCommand(app))
	require.NoError(t, err)
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Horror", "empty genres are listed")
	assert.NotContains(t, out, "No books in the catalog")
}

func TestQuietSuppressesConfirmations(t *testing.T) {
	app, _ := newApp(t)
	app.QuietFunc = func() bool { return true }

	out, err := run(t, NewAddCommand(app), "Sci-Fi", "Dune", "Herbert")
	require.NoError(t, err)
	assert.Empty(t, out)
}
