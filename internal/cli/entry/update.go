package entry

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/recall/internal/cli"
	"github.com/thenoetrevino/recall/internal/cli/styles"
	entryservice "github.com/thenoetrevino/recall/internal/services/entry"
)

// UpdateCmd returns the entry update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update [id]",
		Aliases: []string{"edit"},
		Short:   "Replace an entry's notes",
		Long: `Replace the notes of an existing entry. Title, date, and time never change.

Examples:
  recall entry update 3 --notes="whole milk"

  # Clear the notes
  recall entry update --id=3 --notes=""
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Entry ID (can also be provided as positional argument)")
	cmd.Flags().String("notes", "", "New notes (required, may be empty)")
	addOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	entryID, err := resolveID(cmd, args)
	if err == nil {
		err = cli.RequireFlags(cmd, "notes")
	}
	if err != nil {
		return formatter.FailWithSuggestion(err, `Usage: recall entry update <id> --notes="..."`)
	}

	notes, _ := cmd.Flags().GetString("notes")

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	svc := cliInstance.App.EntryService
	if err := svc.UpdateNotes(ctx, entryservice.UpdateNotesRequest{ID: entryID, Notes: notes}); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		entry, err := svc.GetEntryByID(ctx, entryID)
		if err != nil {
			return formatter.Fail(err)
		}
		return formatter.Success("entry", entry)
	}

	formatter.Printf("%s Entry %d notes updated successfully\n", styles.SuccessStyle.Render("✓"), entryID)
	return nil
}
