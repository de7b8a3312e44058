package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/books"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/export"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/imports"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/shell"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(shell.NewCommand(a))
	rootCmd.AddCommand(books.NewAddCommand(a))
	rootCmd.AddCommand(books.NewRecommendCommand(a))
	rootCmd.AddCommand(books.NewSearchCommand(a))
	rootCmd.AddCommand(books.NewRemoveCommand(a))
	rootCmd.AddCommand(books.NewListCommand(a))

	// Management commands
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(imports.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("bookshelf %s\n", a.version)
			cmd.Printf("  commit:   %s\n", a.commit)
			cmd.Printf("  built:    %s\n", a.date)
			cmd.Printf("  built by: %s\n", a.builtBy)
		},
	}
}
