package entry

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/recall/internal/cli"
	"github.com/thenoetrevino/recall/internal/cli/styles"
	"github.com/thenoetrevino/recall/internal/models"
	"github.com/thenoetrevino/recall/internal/tui/components"
)

// ShowCmd returns the entry show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show [id]",
		Aliases: []string{"view"},
		Short:   "Show an entry with its notes",
		Long:    "Display an entry's title, stamp, and notes. Notes are rendered as markdown.",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runShow,
	}

	cmd.Flags().Int("id", 0, "Entry ID (can also be provided as positional argument)")
	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	entryID, err := resolveID(cmd, args)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Usage: recall entry show <id> or recall entry show --id=<id>")
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	entry, err := cliInstance.App.EntryService.GetEntryByID(ctx, entryID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success("entry", entry)
	}

	formatter.Println(renderCard(entry))
	return nil
}

// renderCard formats an entry for human-readable output
func renderCard(entry *models.Entry) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", entry.ID, entry.Title)))
	content.WriteString("\n\n")
	content.WriteString(styles.LabelStyle.Render("Date: ") + styles.ValueStyle.Render(entry.Date))
	content.WriteString("\n")
	content.WriteString(styles.LabelStyle.Render("Time: ") + styles.ValueStyle.Render(entry.Time))
	content.WriteString("\n")
	content.WriteString(styles.SectionStyle.Render("Notes"))
	content.WriteString("\n")
	content.WriteString(components.RenderNotes(components.NotesProps{
		Notes: entry.Notes,
		Width: styles.CardWidth - 6,
	}))

	return styles.CardStyle.Render(content.String())
}
