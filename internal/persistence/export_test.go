package persistence

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/catalogs"
	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
)

func sampleCatalog(t *testing.T) *catalogs.Catalog {
	t.Helper()
	cat := catalogs.New()
	for _, tr := range []triple{
		{"Sci-Fi", "Dune", "Herbert"},
		{"Sci-Fi", "Foundation", "Asimov"},
		{"Horror", "It", "King"},
	} {
		_, err := cat.AddBook(tr.genre, tr.title, tr.author)
		require.NoError(t, err)
	}
	cat.AddGenre("Poetry")
	return cat
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"text":     FormatText,
		"TXT":      FormatText,
		"json":     FormatJSON,
		"yaml":     FormatYAML,
		"yml":      FormatYAML,
		"markdown": FormatMarkdown,
		"md":       FormatMarkdown,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestEncodeJSON(t *testing.T) {
	cat := sampleCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, cat, FormatJSON))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 3, doc.Genres)
	assert.Equal(t, 3, doc.Books)
	assert.Equal(t, cat.List(), doc.Shelves)
}

func TestYAMLRoundTrip(t *testing.T) {
	cat := sampleCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, cat, FormatYAML))
	assert.Contains(t, buf.String(), "shelves:")
	assert.Contains(t, buf.String(), "title: Foundation")

	loaded, err := DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, cat.List(), loaded.List())
}

func TestDecodeYAMLInvalid(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("shelves: [unterminated"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestEncodeMarkdown(t *testing.T) {
	cat := sampleCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, cat, FormatMarkdown))
	out := buf.String()

	assert.Contains(t, out, "# Book Catalog")
	assert.Contains(t, out, "3 books in 3 genres.")
	assert.Contains(t, out, "## Sci-Fi")
	assert.Contains(t, out, "## Poetry")
	assert.Contains(t, out, "No books.")
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "Asimov")
	assert.Less(t, strings.Index(out, "Foundation"), strings.Index(out, "Dune"))
}

func TestExportText(t *testing.T) {
	cat := sampleCatalog(t)

	var viaExport, viaEncode bytes.Buffer
	require.NoError(t, Export(&viaExport, cat, FormatText))
	require.NoError(t, Encode(&viaEncode, cat))
	assert.Equal(t, viaEncode.String(), viaExport.String())
}

func TestExportUnknownFormat(t *testing.T) {
	err := Export(&bytes.Buffer{}, catalogs.New(), Format("xml"))
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestImportRoundTrip(t *testing.T) {
	cat := sampleCatalog(t)

	for _, format := range []Format{FormatText, FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Export(&buf, cat, format))

			loaded, err := Import(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, cat.List(), loaded.List())
		})
	}
}

func TestImportCapacity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleCatalog(t), FormatJSON))

	_, err := Import(&buf, FormatJSON, catalogs.WithMaxBooks(1))
	assert.True(t, pkgerrors.IsCapacity(err))
}

func TestImportRejectsMarkdown(t *testing.T) {
	_, err := Import(strings.NewReader("# Book Catalog\n"), FormatMarkdown)
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestDecodeJSONInvalid(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"shelves": [`))
	assert.True(t, pkgerrors.IsValidationError(err))
}
