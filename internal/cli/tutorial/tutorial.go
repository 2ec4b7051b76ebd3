// Package tutorial prints a short guide to recall's commands and keys.
package tutorial

import (
	_ "embed"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/recall/internal/tui/components"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print a quick guide to recall",
		Long: `Print a quick guide to recall's commands, keys, and exit codes.

The guide is plain markdown by default so it can be piped or saved.
Pass --render to format it for the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			render, _ := cmd.Flags().GetBool("render")
			width, _ := cmd.Flags().GetInt("width")
			return outputTutorial(cmd, render, width)
		},
	}

	cmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	cmd.Flags().Int("width", 80, "Wrap width used with --render")

	return cmd
}

func outputTutorial(cmd *cobra.Command, render bool, width int) error {
	content := tutorialContent
	if render {
		content = components.RenderNotes(components.NotesProps{Notes: tutorialContent, Width: width}) + "\n"
	}
	_, err := cmd.OutOrStdout().Write([]byte(content))
	return err
}
