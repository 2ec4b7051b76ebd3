package entry

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/recall/internal/cli"
	"github.com/thenoetrevino/recall/internal/cli/styles"
)

// DeleteCmd returns the entry delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Long:    "Delete an entry by ID (requires confirmation unless --force, --quiet, or --json).",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDelete,
	}

	cmd.Flags().Int("id", 0, "Entry ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	entryID, err := resolveID(cmd, args)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Usage: recall entry delete <id> [--force]")
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	svc := cliInstance.App.EntryService

	// Get entry details for confirmation
	entry, err := svc.GetEntryByID(ctx, entryID)
	if err != nil {
		return formatter.Fail(err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		prompt := fmt.Sprintf("Delete entry #%d: '%s'?", entry.ID, entry.Title)
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := svc.DeleteEntry(ctx, entryID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONOut(map[string]interface{}{
			"success":  true,
			"entry_id": entryID,
		})
	}

	formatter.Printf("%s Entry %d deleted successfully\n", styles.SuccessStyle.Render("✓"), entryID)
	return nil
}
