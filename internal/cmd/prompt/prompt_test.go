package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/errors"
)

func TestChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		invalid bool
	}{
		{input: "1\n", want: 1},
		{input: " 6 \r\n", want: 6},
		{input: "3", want: 3},
		{input: "abc\n", invalid: true},
		{input: "1abc\n", invalid: true},
		{input: "2 3\n", invalid: true},
		{input: "0\n", invalid: true},
		{input: "7\n", invalid: true},
		{input: "\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			got, err := p.Choice("> ", 6)
			if tt.invalid {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "> ", out.String())
		})
	}
}

func TestChoiceEOF(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)
	_, err := p.Choice("> ", 6)
	assert.ErrorIs(t, err, io.EOF)
}

func TestTextRepromptsOnEmpty(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n   \nSci-Fi\n"), &out)

	got, err := p.Text("Genre: ")
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi", got)
	assert.Equal(t, 3, strings.Count(out.String(), "Genre: "))
}

func TestTextEOF(t *testing.T) {
	p := New(strings.NewReader("\n"), io.Discard)
	_, err := p.Text("Genre: ")
	assert.ErrorIs(t, err, io.EOF)
}
