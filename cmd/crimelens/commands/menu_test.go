package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuCommand(t *testing.T, input string) (*bytes.Buffer, error) {
	t.Helper()

	cmd := NewMenuCommand()
	cmd.SetArgs([]string{"--data", writeTestCSV(t), "--output", t.TempDir()})
	cmd.SetIn(strings.NewReader(input))

	var buf bytes.Buffer

	cmd.SetOut(&buf)

	return &buf, cmd.Execute()
}

func TestMenuCommand_Exit(t *testing.T) {
	t.Parallel()

	buf, err := menuCommand(t, "0\n")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "0. Exit")
	assert.Contains(t, buf.String(), "Goodbye.")
}

func TestMenuCommand_InvalidChoiceThenExit(t *testing.T) {
	t.Parallel()

	buf, err := menuCommand(t, "99\n0\n")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "invalid choice")
}

func TestMenuCommand_ShowThenExit(t *testing.T) {
	t.Parallel()

	buf, err := menuCommand(t, "1\n0\n")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Uttar Pradesh")
}

func TestMenuCommand_ChartThenExit(t *testing.T) {
	t.Parallel()

	buf, err := menuCommand(t, "5\n0\n")

	require.NoError(t, err)

	// Option 5 renders the heatmap surface.
	assert.Contains(t, buf.String(), "heatmap.html")
}

func TestMenuCommand_EOF(t *testing.T) {
	t.Parallel()

	_, err := menuCommand(t, "")

	require.NoError(t, err)
}
