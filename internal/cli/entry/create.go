package entry

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/recall/internal/cli"
	"github.com/thenoetrevino/recall/internal/cli/styles"
	entryservice "github.com/thenoetrevino/recall/internal/services/entry"
)

// CreateCmd returns the entry create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   "Create a new entry",
		Long: `Create a new entry. The date and time are stamped automatically.

Examples:
  # Title only (human-readable output)
  recall entry create --title="Buy milk"

  # With notes
  recall entry create --title="Buy milk" --notes="2%, the big carton"

  # JSON output for scripts
  recall entry create --title="Buy milk" --json

  # Quiet mode for bash capture
  ENTRY_ID=$(recall entry create --title="Buy milk" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Entry title (required)")

	// Optional flags
	cmd.Flags().String("notes", "", "Free-text notes (markdown)")

	addOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	if err := cli.RequireFlags(cmd, "title"); err != nil {
		return formatter.FailWithSuggestion(err, `Usage: recall entry create --title="Buy milk"`)
	}

	title, _ := cmd.Flags().GetString("title")
	notes, _ := cmd.Flags().GetString("notes")

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	entry, err := cliInstance.App.EntryService.CreateEntry(ctx, entryservice.CreateEntryRequest{
		Title: title,
		Notes: notes,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Machine() {
		return formatter.Success("entry", entry)
	}

	formatter.Printf("%s Entry '%s' created successfully (ID: %d)\n", styles.SuccessStyle.Render("✓"), entry.Title, entry.ID)
	formatter.Printf("  %s %s %s\n", styles.LabelStyle.Render("Stamped:"), entry.Date, entry.Time)
	if entry.HasNotes() {
		formatter.Printf("  %s %s\n", styles.LabelStyle.Render("Notes:"), entry.Notes)
	}

	return nil
}
