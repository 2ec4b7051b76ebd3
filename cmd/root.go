package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/recall/internal/cli"
	"github.com/thenoetrevino/recall/internal/cli/entry"
	"github.com/thenoetrevino/recall/internal/cli/tutorial"
	"github.com/thenoetrevino/recall/internal/launcher"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the recall command tree. Running it without a
// subcommand opens the terminal UI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Recall - a terminal reminder and notes keeper",
		Long: `Recall keeps short reminder entries with a title, the date and time they
were written, and free-form notes, stored in a local SQLite file.

Run without arguments to open the interactive UI, or use the entry
subcommands from scripts.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q for %q", cli.ErrUsage, args[0], cmd.CommandPath())
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("db")
			if path != "" {
				cmd.SetContext(cli.WithDatabasePath(cmd.Context(), path))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("db")
			return launcher.Launch(cmd.Context(), path)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().String("db", "", "Path to the database file (overrides config and RECALL_DB_PATH)")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	cmd.AddCommand(entry.EntryCmd())
	cmd.AddCommand(tutorial.TutorialCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
