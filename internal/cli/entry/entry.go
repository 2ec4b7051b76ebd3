// Package entry holds all cli commands related to entries
//
// e.g., recall entry ...
package entry

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/recall/internal/cli"
)

// EntryCmd returns the entry parent command
func EntryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entry",
		Aliases: []string{"note", "reminder"},
		Short:   "Manage entries",
		Long:    "Create, list, show, update, and delete reminder entries.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly output flags
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// resolveID reads the entry ID from the first positional argument or --id.
// Both may be given only when they agree.
func resolveID(cmd *cobra.Command, args []string) (int, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: entry ID must be an integer, got %q", cli.ErrUsage, args[0])
		}
		if cmd.Flags().Changed("id") {
			if flagID, _ := cmd.Flags().GetInt("id"); flagID != id {
				return 0, fmt.Errorf("%w: entry ID given twice (%d and --id=%d)", cli.ErrUsage, id, flagID)
			}
		}
		return id, nil
	}

	if err := cli.RequireFlags(cmd, "id"); err != nil {
		return 0, err
	}
	id, _ := cmd.Flags().GetInt("id")
	return id, nil
}

// openCLI returns the CLI for the command, reporting failures through formatter
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter.Fail(err)
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
