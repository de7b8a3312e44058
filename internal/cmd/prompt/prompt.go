// Package prompt reads menu choices and free-text answers from a line
// oriented input such as a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Prompter writes questions to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned; io.EOF is only reported when nothing
// is left.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Choice asks for a number between 1 and limit. The whole trimmed line
// must be the number, so "1abc" is rejected. Anything else yields a
// ValidationError so the caller can re-prompt.
func (p *Prompter) Choice(label string, limit int) (int, error) {
	fmt.Fprint(p.out, label)

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, errors.NewValidationError("choice", line, "not a number")
	}
	if n < 1 || n > limit {
		return 0, errors.NewValidationError("choice", n, fmt.Sprintf("must be between 1 and %d", limit))
	}
	return n, nil
}

// Text asks until a non-empty answer is given. Surrounding blanks are
// kept; only a blank answer is rejected.
func (p *Prompter) Text(label string) (string, error) {
	for {
		fmt.Fprint(p.out, label)

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}
