// Package shell provides the interactive menu.
package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/books"
	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/prompt"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Menu choices.
const (
	ChoiceAdd = iota + 1
	ChoiceRecommend
	ChoiceSearch
	ChoiceRemove
	ChoiceList
	ChoiceSaveExit
)

const menu = `
=== %s Book Recommendation System ===
1. %s Add book
2. %s Recommend books by genre
3. %s Search book by title
4. %s Remove book
5. %s List all books
6. %s Save and exit
`

// NewCommand creates the shell command. The root command runs it when
// no subcommand is given.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		GroupID: "core",
		Short:   "Start the interactive menu",
		Long: `Shell loads the catalog and shows a numbered menu until "Save and
exit" is chosen. End of input (Ctrl-D) also saves and exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app)
		},
	}
}

// Run starts the menu on the command's input and output streams.
func Run(cmd *cobra.Command, app appcontext.Interface) error {
	ctx := cmd.Context()
	client, err := app.Bookshelf(ctx)
	if err != nil {
		return err
	}

	return New(client, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}

// Shell is one interactive session over a loaded bookshelf.
type Shell struct {
	client  bookshelf.Client
	prompt  *prompt.Prompter
	out     io.Writer
	printer *books.Printer
}

// New creates a session reading answers from in.
func New(client bookshelf.Client, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		client:  client,
		prompt:  prompt.New(in, out),
		out:     out,
		printer: books.NewPrinter(out, output.FormatTable, false),
	}
}

// Run shows the menu until the user saves and exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.printer.Alert(alerts.Infof("%s %d books loaded from %q",
		emoji.Load, s.client.Catalog().BookCount(), s.client.Location())); err != nil {
		return err
	}

	for {
		fmt.Fprintf(s.out, menu, emoji.Books, emoji.Add, emoji.Recommend, emoji.Search, emoji.Remove, emoji.List, emoji.Save)

		choice, err := s.prompt.Choice("Choose an option: ", ChoiceSaveExit)
		switch {
		case err == io.EOF:
			choice = ChoiceSaveExit
		case errors.IsValidationError(err):
			if err := s.printer.Alert(alerts.NewWarning("Invalid option. Try again.")); err != nil {
				return err
			}
			continue
		case err != nil:
			return err
		}

		if choice == ChoiceSaveExit {
			return s.saveAndExit(ctx)
		}

		err = s.dispatch(choice)
		if err == io.EOF {
			return s.saveAndExit(ctx)
		}
		if err != nil {
			return err
		}
	}
}

// dispatch runs one menu action. Catalog errors are reported and the
// menu continues; only input and output failures end the session.
func (s *Shell) dispatch(choice int) error {
	var err error
	switch choice {
	case ChoiceAdd:
		err = s.add()
	case ChoiceRecommend:
		err = s.recommend()
	case ChoiceSearch:
		err = s.search()
	case ChoiceRemove:
		err = s.remove()
	case ChoiceList:
		err = s.printer.Shelves(s.client.List())
	}

	switch {
	case errors.IsNotFound(err):
		return s.printer.Alert(alerts.NewWarning(err.Error()))
	case errors.IsCapacity(err):
		return s.printer.Alert(alerts.NewError("Could not add book").WithError(err))
	default:
		return err
	}
}

func (s *Shell) ask(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := s.prompt.Text(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (s *Shell) add() error {
	in, err := s.ask("Genre: ", "Book title: ", "Book author: ")
	if err != nil {
		return err
	}
	book, err := s.client.AddBook(in[0], in[1], in[2])
	if err != nil {
		return err
	}
	return s.printer.Added(in[0], book)
}

func (s *Shell) recommend() error {
	in, err := s.ask("Genre: ")
	if err != nil {
		return err
	}
	list, err := s.client.Recommend(in[0])
	if errors.IsGenreNotFound(err) {
		return s.printer.Alert(alerts.Warningf("No books found for genre %q", in[0]))
	}
	if err != nil {
		return err
	}
	return s.printer.Recommendations(in[0], list)
}

func (s *Shell) search() error {
	in, err := s.ask("Title: ")
	if err != nil {
		return err
	}
	matches, err := s.client.Search(in[0])
	if err != nil {
		return err
	}
	return s.printer.Matches(matches)
}

func (s *Shell) remove() error {
	in, err := s.ask("Genre: ", "Title: ")
	if err != nil {
		return err
	}
	book, err := s.client.Remove(in[0], in[1])
	if err != nil {
		return err
	}
	return s.printer.Removed(in[0], book)
}

func (s *Shell) saveAndExit(ctx context.Context) error {
	if err := s.client.Save(ctx); err != nil {
		return err
	}
	if err := s.printer.Saved(s.client.Location()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, "Goodbye.")
	return err
}
