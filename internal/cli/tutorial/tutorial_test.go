package tutorial

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/recall/internal/testutil"
)

func TestTutorial_PrintsMarkdown(t *testing.T) {
	cmd := TutorialCmd()
	cmd.SetArgs([]string{})

	out, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)
	assert.Equal(t, tutorialContent, out)
	assert.Contains(t, out, "recall entry create")
	assert.Contains(t, out, "| 3 | entry not found |")
}

func TestTutorial_Render(t *testing.T) {
	cmd := TutorialCmd()
	cmd.SetArgs([]string{"--render", "--width", "60"})

	out, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "recall entry list")
	assert.NotContains(t, plain, "## Commands", "headings are rendered")
}

func TestTutorial_RejectsArgs(t *testing.T) {
	cmd := TutorialCmd()
	cmd.SetArgs([]string{"extra"})

	_, err := testutil.ExecuteCommand(t, cmd)
	assert.Error(t, err)
}
