package alerts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func TestAlertString(t *testing.T) {
	a := Successf("Book %q added to %q", "Dune", "Sci-Fi")
	assert.Equal(t, emoji.Success+` Book "Dune" added to "Sci-Fi"`, a.String())

	a = NewError("save failed").WithError(errors.New("disk full"))
	assert.Equal(t, emoji.Error+" save failed: disk full", a.String())
}

func TestFormatWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatTable)

	require.NoError(t, w.WriteAlert(NewWarning("no books").WithDetails("try another genre")))
	assert.Equal(t, emoji.Warning+" no books\n   try another genre\n", buf.String(),
		"a buffer is not a terminal so no color codes are written")
}

func TestFormatWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatJSON)
	require.NoError(t, w.WriteAlert(NewInfo("loaded")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "loaded", got["message"])
}

func TestFormatWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatYAML)
	require.NoError(t, w.WriteAlert(NewError("boom")))
	assert.True(t, strings.HasPrefix(buf.String(), "---\n"))
	assert.Contains(t, buf.String(), "level: error")
}

func TestMultiWriter(t *testing.T) {
	var a, b bytes.Buffer
	w := MultiWriter(NewWriterTo(&a), NewWriterTo(&b), DiscardWriter)
	require.NoError(t, w.WriteAlert(NewInfo("hi")))
	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}
