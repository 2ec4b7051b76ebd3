package entry

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/recall/internal/cli"
	"github.com/thenoetrevino/recall/internal/cli/styles"
	"github.com/thenoetrevino/recall/internal/models"
)

// titleColumnWidth is where long titles wrap in the human-readable table
const titleColumnWidth = 36

// ListCmd returns the entry list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all entries",
		Long:    "List every entry in creation order.",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}

	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	svc := cliInstance.App.EntryService
	entries, err := svc.GetAllEntries(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, entry := range entries {
			formatter.ID(entry.ID)
		}
		return nil
	}

	if formatter.JSON {
		count, err := svc.CountEntries(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		return formatter.JSONOut(map[string]interface{}{
			"success": true,
			"count":   count,
			"entries": entries,
		})
	}

	if len(entries) == 0 {
		formatter.Println("No entries yet. Create one with: recall entry create --title=\"...\"")
		return nil
	}

	formatter.Println(formatTable(entries))
	return nil
}

// formatTable renders entries as an aligned ID/Title/Date/Time table.
// Titles longer than the column wrap onto continuation lines.
func formatTable(entries []*models.Entry) string {
	idWidth := len("ID")
	for _, entry := range entries {
		idWidth = max(idWidth, len(itoa(entry.ID)))
	}

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(row(idWidth, "ID", "Title", "Date", "Time")))

	for _, entry := range entries {
		lines := strings.Split(wordwrap.String(entry.Title, titleColumnWidth), "\n")
		b.WriteString("\n")
		b.WriteString(row(idWidth, itoa(entry.ID), lines[0], entry.Date, entry.Time))
		for _, cont := range lines[1:] {
			b.WriteString("\n")
			b.WriteString(strings.TrimRight(row(idWidth, "", cont, "", ""), " "))
		}
	}
	return b.String()
}

func row(idWidth int, id, title, date, clock string) string {
	return padRight(id, idWidth) + "  " + padRight(title, titleColumnWidth) + "  " + padRight(date, len(models.DateLayout)) + "  " + clock
}

// padRight pads by display width so wide characters keep columns aligned
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
